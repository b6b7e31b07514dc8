package common

// Abs returns the absolute value of an integer
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// FloorDiv divides a by b rounding towards negative infinity. b must be positive.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// FloorMod returns a mod b in the range [0, b). b must be positive.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
