package ganr

import (
	"slices"
	"sync"
)

// listenerSet is a copy-on-write set of listeners.
// Notification iterates a snapshot,
// so a listener may add or remove listeners (itself included)
// while being notified without disturbing the iteration.
type listenerSet struct {
	mu sync.Mutex
	ls []Listener
}

func (s *listenerSet) Add(l Listener) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.ls, l) {
		return false
	}

	// Clip so the append never writes into a snapshot's backing array.
	s.ls = append(slices.Clip(s.ls), l)
	return true
}

func (s *listenerSet) Remove(l Listener) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.ls, l)
	if idx < 0 {
		return false
	}

	s.ls = slices.Concat(s.ls[:idx], s.ls[idx+1:])
	return true
}

func (s *listenerSet) Snapshot() []Listener {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ls
}
