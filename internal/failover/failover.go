// Package failover implements the ordered-candidate pattern: try each
// candidate in turn, stop at the first success, keep every failure for
// diagnostics.
package failover

// TryInOrder applies try to each candidate in order. It returns the first
// candidate that succeeds, the errors of every candidate attempted before
// it, and whether any candidate succeeded at all. When none succeed the
// error slice holds one entry per candidate.
func TryInOrder[T any](candidates []T, try func(T) error) (T, []error, bool) {
	var failures []error

	for _, c := range candidates {
		if err := try(c); err != nil {
			failures = append(failures, err)
			continue
		}
		return c, failures, true
	}

	var zero T
	return zero, failures, false
}
