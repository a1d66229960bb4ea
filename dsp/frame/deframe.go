package frame

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/sri-dsa/Speech-Recognition/dsp/core"
	"github.com/sri-dsa/Speech-Recognition/dsp/window"
)

// weightEpsilon is added to every window coefficient in the weight
// accumulator so samples that no frame covers divide by a nonzero value.
const weightEpsilon = 1e-15

// Deframe reconstructs a signal from frames produced by [Frame].
//
// Each row is added into a signal accumulator at offset i*step, and
// win(L)+1e-15 is added into a weight accumulator over the same range. The
// output is signal/weight, truncated to signalLength samples. When
// signalLength <= 0 the full padded length is returned; larger values are
// clamped to it. Samples that fall between frames (step > length) are zero.
//
// frames must have exactly round(frameLength) columns. The reconstruction is
// exact when frames were windowed with the same win and step, provided every
// sample is covered by a nonzero window coefficient.
func Deframe(frames mat.Matrix, signalLength int, frameLength, frameStep float64, win window.Window) ([]float64, error) {
	length, step, err := sizes(frameLength, frameStep)
	if err != nil {
		return nil, err
	}

	rows, cols := frames.Dims()
	if cols != length {
		return nil, fmt.Errorf("%w: frames have %d columns, frame length is %d",
			core.ErrShapeMismatch, cols, length)
	}

	coeffs, err := coefficients(win, length)
	if err != nil {
		return nil, err
	}

	weights := make([]float64, length)
	for i, c := range coeffs {
		weights[i] = c + weightEpsilon
	}

	padLength := PadLength(rows, length, step)
	if signalLength <= 0 || signalLength > padLength {
		signalLength = padLength
	}

	acc := make([]float64, padLength)
	norm := make([]float64, padLength)
	row := make([]float64, length)

	for i := range rows {
		start := i * step
		mat.Row(row, i, frames)
		vecmath.AddBlockInPlace(acc[start:start+length], row)
		vecmath.AddBlockInPlace(norm[start:start+length], weights)
	}

	out := make([]float64, signalLength)
	for k := range out {
		// Samples between frames (step > length) stay zero.
		if norm[k] != 0 {
			out[k] = acc[k] / norm[k]
		}
	}

	return out, nil
}
