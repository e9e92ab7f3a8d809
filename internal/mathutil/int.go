package mathutil

// IntMin returns the smaller of two ints (search: int-math).
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints (search: int-math).
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IsOdd reports whether n is odd, including negative n (search: int-math).
func IsOdd(n int) bool {
	return n%2 != 0
}

// FloorDiv divides rounding toward negative infinity (search: int-math).
// Pixel positions left of an origin map to negative cell indices this way.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
