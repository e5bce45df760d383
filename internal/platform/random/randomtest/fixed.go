// Package randomtest provides deterministic random.Source implementations
// for tests.
package randomtest

// Fixed is a random.Source that always returns the same value, clamped to the
// requested interval.
type Fixed int

// IntRange returns the fixed value clamped to [min, max].
func (f Fixed) IntRange(min, max int) int {
	n := int(f)
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
