package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
)

// procAdapter reports a debugger as attached
// when the Linux TracerPid of this process is nonzero.
// On systems without /proc it always reports no debugger.
type procAdapter struct {
	log *slog.Logger

	warnOnce sync.Once
}

func newProcAdapter(log *slog.Logger) *procAdapter {
	return &procAdapter{log: log}
}

func (a *procAdapter) IsDebuggerAttached() bool {
	b, err := os.ReadFile("/proc/self/status")
	if err != nil {
		a.warnOnce.Do(func() {
			a.log.Debug("Cannot read process status; assuming no debugger", "err", err)
		})
		return false
	}

	pid, err := parseTracerPid(bytes.NewReader(b))
	if err != nil {
		a.warnOnce.Do(func() {
			a.log.Debug("Cannot parse process status; assuming no debugger", "err", err)
		})
		return false
	}
	return pid != 0
}

var errNoTracerPid = errors.New("no TracerPid line")

// parseTracerPid extracts the TracerPid value
// from the contents of a /proc/<pid>/status file.
func parseTracerPid(r io.Reader) (int, error) {
	s := bufio.NewScanner(r)
	for s.Scan() {
		k, v, ok := bytes.Cut(s.Bytes(), []byte{':'})
		if !ok || string(k) != "TracerPid" {
			continue
		}

		pid, err := strconv.Atoi(string(bytes.TrimSpace(v)))
		if err != nil {
			return 0, fmt.Errorf("malformed TracerPid %q: %w", v, err)
		}
		return pid, nil
	}
	if err := s.Err(); err != nil {
		return 0, err
	}
	return 0, errNoTracerPid
}
