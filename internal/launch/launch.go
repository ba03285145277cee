// Package launch spawns the process behind a selected entry. Spawning is
// fire-and-forget: the dispatcher never waits on or supervises the child.
package launch

import "errors"

// ErrUnsupported is returned when this build cannot launch shell-link
// targets.
var ErrUnsupported = errors.New("launching is not supported on this platform")
