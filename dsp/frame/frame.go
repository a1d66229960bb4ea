package frame

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/sri-dsa/Speech-Recognition/dsp/core"
	"github.com/sri-dsa/Speech-Recognition/dsp/window"
)

// Count returns the number of frames needed to cover signalLength samples
// with frames of length samples spaced step samples apart. It is at least 1.
func Count(signalLength, length, step int) int {
	if signalLength <= length || step <= 0 {
		return 1
	}

	return 1 + (signalLength-length+step-1)/step
}

// PadLength returns the zero-padded signal length covered by frames frames.
func PadLength(frames, length, step int) int {
	if frames <= 0 {
		return 0
	}

	return (frames-1)*step + length
}

// Frame splits signal into overlapping frames and multiplies every frame by
// win. frameLength and frameStep are rounded to whole samples. A nil win
// selects [window.Rectangular].
//
// The result has Count(len(signal), L, S) rows and L columns. signal is not
// modified.
func Frame(signal []float64, frameLength, frameStep float64, win window.Window) (*mat.Dense, error) {
	length, step, err := sizes(frameLength, frameStep)
	if err != nil {
		return nil, err
	}

	coeffs, err := coefficients(win, length)
	if err != nil {
		return nil, err
	}

	n := Count(len(signal), length, step)

	padded := make([]float64, PadLength(n, length, step))
	copy(padded, signal)

	out := mat.NewDense(n, length, nil)
	for i := range n {
		start := i * step
		vecmath.MulBlock(out.RawRowView(i), padded[start:start+length], coeffs)
	}

	return out, nil
}

func sizes(frameLength, frameStep float64) (length, step int, err error) {
	length, err = core.RoundSamples("frame length", frameLength)
	if err != nil {
		return 0, 0, err
	}

	step, err = core.RoundSamples("frame step", frameStep)
	if err != nil {
		return 0, 0, err
	}

	return length, step, nil
}

func coefficients(win window.Window, length int) ([]float64, error) {
	coeffs := window.OrDefault(win).Generate(length)
	if len(coeffs) != length {
		return nil, fmt.Errorf("%w: window returned %d coefficients for frame length %d",
			core.ErrShapeMismatch, len(coeffs), length)
	}

	return coeffs, nil
}
