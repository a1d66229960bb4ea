// Package signal provides sample-level filters applied before framing.
package signal

// DefaultPreEmphasis is the customary pre-emphasis coefficient for speech.
const DefaultPreEmphasis = 0.95

// PreEmphasis applies the first-order high-pass filter
// y[0] = x[0], y[i] = x[i] - coefficient*x[i-1] and returns a new slice.
// x is not modified.
func PreEmphasis(x []float64, coefficient float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}

	out[0] = x[0]
	for i := 1; i < len(x); i++ {
		out[i] = x[i] - coefficient*x[i-1]
	}

	return out
}

// DeEmphasis inverts [PreEmphasis] with the recursion
// x[0] = y[0], x[i] = y[i] + coefficient*x[i-1].
func DeEmphasis(y []float64, coefficient float64) []float64 {
	out := make([]float64, len(y))
	if len(y) == 0 {
		return out
	}

	out[0] = y[0]
	for i := 1; i < len(y); i++ {
		out[i] = y[i] + coefficient*out[i-1]
	}

	return out
}
