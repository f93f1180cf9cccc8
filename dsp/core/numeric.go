package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp[F Float](value, min, max F) F {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual[F Float](a, b, eps F) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := F(math.Abs(float64(a - b)))
	if diff <= eps {
		return true
	}

	largest := F(math.Max(math.Abs(float64(a)), math.Abs(float64(b))))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Abs returns |x| in the precision of x.
func Abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}
