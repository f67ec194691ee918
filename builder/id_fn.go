package builder

import "strconv"

// IDFn generates a vertex identifier from its zero-based index.
// It must be a pure, deterministic function: given the same idx, it
// always returns the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) time where d = number of digits in idx, O(1) extra space.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}
