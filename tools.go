//go:build tools

// For the tools.go pattern, see:
// https://go.dev/wiki/Modules#how-can-i-track-tool-dependencies-for-a-module

package ganr

import (
	// For stringer, used in the go:generate calls for the event and state enums.
	_ "golang.org/x/tools/cmd/stringer"
)
