package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"

	"github.com/sri-dsa/Speech-Recognition/dsp/core"
)

// transform computes the half spectrum of one nfft-length real frame into
// separate real and imaginary slices of length nfft/2+1.
type transform interface {
	forward(re, im, frame []float64) error
}

type planTransform struct {
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

func (p *planTransform) forward(re, im, frame []float64) error {
	for i, v := range frame {
		p.in[i] = complex(v, 0)
	}

	if err := p.plan.Forward(p.out, p.in); err != nil {
		return fmt.Errorf("spectrum: forward fft: %w", err)
	}

	for k := range re {
		re[k] = real(p.out[k])
		im[k] = imag(p.out[k])
	}

	return nil
}

type fourierTransform struct {
	fft    *fourier.FFT
	coeffs []complex128
}

func (f *fourierTransform) forward(re, im, frame []float64) error {
	f.coeffs = f.fft.Coefficients(f.coeffs, frame)

	for k := range re {
		re[k] = real(f.coeffs[k])
		im[k] = imag(f.coeffs[k])
	}

	return nil
}

// newTransform returns an algo-fft plan when nfft is a power of two and
// gonum's mixed-radix real FFT for every other size.
func newTransform(nfft int) transform {
	if isPowerOf2(nfft) {
		if plan, err := algofft.NewPlan64(nfft); err == nil {
			return &planTransform{
				plan: plan,
				in:   make([]complex128, nfft),
				out:  make([]complex128, nfft),
			}
		}
	}

	return &fourierTransform{
		fft:    fourier.NewFFT(nfft),
		coeffs: make([]complex128, Bins(nfft)),
	}
}

// isPowerOf2 reports whether n is a positive power of two.
func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Bins returns the number of half-spectrum bins for an FFT of size nfft.
func Bins(nfft int) int {
	if nfft <= 0 {
		return 0
	}

	return nfft/2 + 1
}

// eachFrame transforms every row of frames and calls fn with the row index
// and the real and imaginary parts of its half spectrum. The slices passed
// to fn are reused between calls.
func eachFrame(frames mat.Matrix, nfft int, fn func(i int, re, im []float64)) error {
	rows, cols := frames.Dims()
	tr := newTransform(nfft)

	row := make([]float64, cols)
	buf := make([]float64, nfft)
	bins := Bins(nfft)
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range rows {
		mat.Row(row, i, frames)

		n := copy(buf, row)
		for j := n; j < nfft; j++ {
			buf[j] = 0
		}

		if err := tr.forward(re, im, buf); err != nil {
			return err
		}

		fn(i, re, im)
	}

	return nil
}

// newSpectrumMatrix validates the inputs and allocates a rows x Bins(nfft)
// result matrix.
func newSpectrumMatrix(frames mat.Matrix, nfft int) (*mat.Dense, error) {
	if nfft <= 0 {
		return nil, fmt.Errorf("%w: nfft must be > 0: %d", core.ErrInvalidParameter, nfft)
	}

	rows, cols := frames.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty frame matrix %dx%d", core.ErrShapeMismatch, rows, cols)
	}

	return mat.NewDense(rows, Bins(nfft), nil), nil
}
