package spectrum

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/sri-dsa/Speech-Recognition/dsp/core"
)

// Spectrogram holds the three spectra of one frame matrix, computed from a
// single pass of transforms.
type Spectrogram struct {
	NFFT      int
	Magnitude *mat.Dense
	Power     *mat.Dense
	LogPower  *mat.Dense
}

// Magnitude returns |X[k]| for the first nfft/2+1 bins of every row.
//
// Rows shorter than nfft are zero padded and longer rows are truncated.
func Magnitude(frames mat.Matrix, nfft int) (*mat.Dense, error) {
	out, err := newSpectrumMatrix(frames, nfft)
	if err != nil {
		return nil, err
	}

	err = eachFrame(frames, nfft, func(i int, re, im []float64) {
		vecmath.Magnitude(out.RawRowView(i), re, im)
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Power returns |X[k]|^2 / nfft for the first nfft/2+1 bins of every row.
func Power(frames mat.Matrix, nfft int) (*mat.Dense, error) {
	out, err := newSpectrumMatrix(frames, nfft)
	if err != nil {
		return nil, err
	}

	sq := make([]float64, Bins(nfft))
	scale := 1 / float64(nfft)

	err = eachFrame(frames, nfft, func(i int, re, im []float64) {
		vecmath.Power(sq, re, im)
		vecmath.ScaleBlock(out.RawRowView(i), sq, scale)
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// LogPower returns 10*log10(max(power, 1e-30)) for every bin.
//
// With normalize set, the global maximum over all frames and bins is
// subtracted so the largest value is exactly 0.
func LogPower(frames mat.Matrix, nfft int, normalize bool) (*mat.Dense, error) {
	power, err := Power(frames, nfft)
	if err != nil {
		return nil, err
	}

	return logOf(power, normalize), nil
}

// Analyze computes magnitude, power and log-power spectra together.
func Analyze(frames mat.Matrix, nfft int, normalize bool) (*Spectrogram, error) {
	mag, err := newSpectrumMatrix(frames, nfft)
	if err != nil {
		return nil, err
	}
	pow, err := newSpectrumMatrix(frames, nfft)
	if err != nil {
		return nil, err
	}

	sq := make([]float64, Bins(nfft))
	scale := 1 / float64(nfft)

	err = eachFrame(frames, nfft, func(i int, re, im []float64) {
		vecmath.Magnitude(mag.RawRowView(i), re, im)
		vecmath.Power(sq, re, im)
		vecmath.ScaleBlock(pow.RawRowView(i), sq, scale)
	})
	if err != nil {
		return nil, err
	}

	return &Spectrogram{
		NFFT:      nfft,
		Magnitude: mag,
		Power:     pow,
		LogPower:  logOf(pow, normalize),
	}, nil
}

// logOf converts power to dB in a new matrix; power itself is not clipped.
func logOf(power *mat.Dense, normalize bool) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return core.PowerToDB(v)
	}, power)

	if normalize {
		peak := mat.Max(&out)
		out.Apply(func(_, _ int, v float64) float64 {
			return v - peak
		}, &out)
	}

	return &out
}
