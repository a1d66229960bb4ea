package core

import (
	"fmt"
	"math"
)

const defaultEpsilon = 1e-12

// PowerFloor is the smallest power value passed to the logarithm in
// [PowerToDB]. 10*log10(PowerFloor) is -300 dB.
const PowerFloor = 1e-30

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// RoundSamples rounds a possibly fractional sample count to the nearest
// integer, resolving ties to even. name is used in the error message.
func RoundSamples(name string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be finite: %v", ErrInvalidParameter, name, v)
	}

	n := math.RoundToEven(v)
	if n < 1 {
		return 0, fmt.Errorf("%w: %s must round to >= 1 sample: %v", ErrInvalidParameter, name, v)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s too large: %v", ErrInvalidParameter, name, v)
	}

	return int(n), nil
}

// PowerToDB converts linear power to dB (10*log10 convention), flooring the
// input at [PowerFloor] so the result is never -Inf. NaN stays NaN.
func PowerToDB(power float64) float64 {
	if power < PowerFloor {
		power = PowerFloor
	}

	return 10 * math.Log10(power)
}
