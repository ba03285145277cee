//go:build !windows

package launch

import "fmt"

// Start reports the recognized unsupported-platform condition; it never
// panics on a non-Windows build.
func Start(path string) error {
	return fmt.Errorf("cannot launch %s: %w", path, ErrUnsupported)
}
