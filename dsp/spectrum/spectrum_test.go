package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"

	"github.com/sri-dsa/Speech-Recognition/dsp/core"
	"github.com/sri-dsa/Speech-Recognition/internal/testutil"
)

func framesOf(rows ...[]float64) *mat.Dense {
	m := mat.NewDense(len(rows), len(rows[0]), nil)
	for i, r := range rows {
		m.SetRow(i, r)
	}
	return m
}

func TestBins(t *testing.T) {
	for nfft, want := range map[int]int{1: 1, 2: 2, 7: 4, 8: 5, 512: 257, 0: 0, -4: 0} {
		if got := Bins(nfft); got != want {
			t.Fatalf("Bins(%d)=%d, want %d", nfft, got, want)
		}
	}
}

func TestMagnitudeDC(t *testing.T) {
	frames := framesOf(testutil.DC(1, 4))

	mag, err := Magnitude(frames, 4)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}

	want := mat.NewDense(1, 3, []float64{4, 0, 0})
	testutil.RequireMatrixNearlyEqual(t, mag, want, 1e-12)
}

func TestMagnitudeImpulseIsFlat(t *testing.T) {
	frames := framesOf(testutil.Impulse(16, 0), testutil.Impulse(16, 5))

	mag, err := Magnitude(frames, 16)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}

	r, c := mag.Dims()
	if r != 2 || c != 9 {
		t.Fatalf("shape=%dx%d, want 2x9", r, c)
	}
	for i := range r {
		for k := range c {
			if math.Abs(mag.At(i, k)-1) > 1e-12 {
				t.Fatalf("mag[%d][%d]=%v, want 1", i, k, mag.At(i, k))
			}
		}
	}
}

func TestMagnitudeSinePeak(t *testing.T) {
	const (
		nfft = 64
		bin  = 5
	)
	frames := framesOf(testutil.DeterministicSine(bin, nfft, 1, nfft))

	mag, err := Magnitude(frames, nfft)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}

	row := mat.Row(nil, 0, mag)
	if math.Abs(row[bin]-nfft/2) > 1e-9 {
		t.Fatalf("mag[%d]=%v, want %v", bin, row[bin], nfft/2)
	}
	for k, v := range row {
		if k != bin && v > 1e-9 {
			t.Fatalf("leakage at bin %d: %v", k, v)
		}
	}
}

func TestMagnitudePadsAndTruncates(t *testing.T) {
	short := []float64{1, -2, 3}
	padded := []float64{1, -2, 3, 0, 0, 0, 0, 0}

	a, err := Magnitude(framesOf(short), 8)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}
	b, err := Magnitude(framesOf(padded), 8)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}
	testutil.RequireMatrixNearlyEqual(t, a, b, 1e-12)

	long := testutil.Ramp(12)
	c, err := Magnitude(framesOf(long), 8)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}
	d, err := Magnitude(framesOf(long[:8]), 8)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}
	testutil.RequireMatrixNearlyEqual(t, c, d, 1e-12)
}

func TestMagnitudeMatchesReferenceFFT(t *testing.T) {
	for _, nfft := range []int{8, 30, 320, 400, 512, 1000} {
		signal := testutil.DeterministicNoise(int64(nfft), 1, nfft)

		mag, err := Magnitude(framesOf(signal), nfft)
		if err != nil {
			t.Fatalf("nfft=%d: Magnitude error: %v", nfft, err)
		}

		ref := fft.FFTReal(signal)
		for k := range Bins(nfft) {
			want := cmplx.Abs(ref[k])
			if got := mag.At(0, k); math.Abs(got-want) > 1e-9 {
				t.Fatalf("nfft=%d bin %d: got %v, want %v", nfft, k, got, want)
			}
		}
	}
}

func TestTransformMatchesReference(t *testing.T) {
	tests := []struct {
		nfft int
		plan bool
	}{
		{nfft: 8, plan: true},
		{nfft: 30, plan: false},
		{nfft: 32, plan: true},
		{nfft: 320, plan: false},
		{nfft: 400, plan: false},
		{nfft: 512, plan: true},
		{nfft: 1000, plan: false},
	}

	for _, tt := range tests {
		signal := testutil.DeterministicNoise(int64(7+tt.nfft), 1, tt.nfft)

		tr := newTransform(tt.nfft)
		if _, ok := tr.(*planTransform); ok != tt.plan {
			t.Fatalf("nfft=%d: algo-fft plan selected=%v, want %v", tt.nfft, ok, tt.plan)
		}

		bins := Bins(tt.nfft)
		re, im := make([]float64, bins), make([]float64, bins)
		if err := tr.forward(re, im, signal); err != nil {
			t.Fatalf("nfft=%d: forward error: %v", tt.nfft, err)
		}

		ref := fourier.NewFFT(tt.nfft).Coefficients(nil, signal)
		for k := range bins {
			if math.Abs(re[k]-real(ref[k])) > 1e-9 || math.Abs(im[k]-imag(ref[k])) > 1e-9 {
				t.Fatalf("nfft=%d bin %d: got (%v,%v), want %v", tt.nfft, k, re[k], im[k], ref[k])
			}
		}
	}
}

func TestDCBinIsSampleSum(t *testing.T) {
	for _, nfft := range []int{16, 320, 400} {
		signal := testutil.DeterministicNoise(int64(nfft), 1, nfft)
		sum := 0.0
		for _, v := range signal {
			sum += v
		}

		mag, err := Magnitude(framesOf(signal), nfft)
		if err != nil {
			t.Fatalf("nfft=%d: Magnitude error: %v", nfft, err)
		}
		if got := mag.At(0, 0); math.Abs(got-math.Abs(sum)) > 1e-9 {
			t.Fatalf("nfft=%d: bin 0=%v, want |sum|=%v", nfft, got, math.Abs(sum))
		}
	}
}

func TestPowerIsScaledSquare(t *testing.T) {
	frames := framesOf(testutil.DeterministicNoise(3, 1, 20), testutil.DeterministicNoise(4, 1, 20))

	mag, err := Magnitude(frames, 32)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}
	pow, err := Power(frames, 32)
	if err != nil {
		t.Fatalf("Power error: %v", err)
	}

	var want mat.Dense
	want.Apply(func(_, _ int, v float64) float64 { return v * v / 32 }, mag)
	testutil.RequireMatrixNearlyEqual(t, pow, &want, 1e-12)
}

func TestNonNegative(t *testing.T) {
	frames := framesOf(
		testutil.DeterministicNoise(1, 5, 25),
		testutil.DeterministicNoise(2, 5, 25),
		make([]float64, 25),
	)

	mag, err := Magnitude(frames, 64)
	if err != nil {
		t.Fatalf("Magnitude error: %v", err)
	}
	pow, err := Power(frames, 64)
	if err != nil {
		t.Fatalf("Power error: %v", err)
	}

	testutil.RequireMatrixNonNegative(t, mag)
	testutil.RequireMatrixNonNegative(t, pow)
}

func TestLogPowerFloor(t *testing.T) {
	frames := framesOf(make([]float64, 8))

	logPow, err := LogPower(frames, 8, false)
	if err != nil {
		t.Fatalf("LogPower error: %v", err)
	}

	for k := range Bins(8) {
		v := logPow.At(0, k)
		if math.IsInf(v, 0) || math.Abs(v+300) > 1e-9 {
			t.Fatalf("bin %d: got %v, want -300", k, v)
		}
	}
}

func TestLogPowerValues(t *testing.T) {
	frames := framesOf(testutil.DC(1, 4))

	logPow, err := LogPower(frames, 4, false)
	if err != nil {
		t.Fatalf("LogPower error: %v", err)
	}

	// Power at DC is 4*4/4 = 4.
	if got, want := logPow.At(0, 0), 10*math.Log10(4); math.Abs(got-want) > 1e-12 {
		t.Fatalf("DC bin: got %v, want %v", got, want)
	}
	if got := logPow.At(0, 2); math.Abs(got+300) > 1e-9 {
		t.Fatalf("empty bin: got %v, want -300", got)
	}
}

func TestLogPowerNormalizedMaxIsZero(t *testing.T) {
	frames := framesOf(
		testutil.DeterministicSine(1000, 16000, 0.3, 400),
		testutil.DeterministicNoise(9, 0.1, 400),
	)

	logPow, err := LogPower(frames, 512, true)
	if err != nil {
		t.Fatalf("LogPower error: %v", err)
	}

	if got := mat.Max(logPow); got != 0 {
		t.Fatalf("max=%v, want exactly 0", got)
	}
}

func TestLogPowerLeavesInputUntouched(t *testing.T) {
	data := []float64{0, 0, 0, 1e-20, 0, 0, 0, 0}
	frames := framesOf(append([]float64(nil), data...))

	if _, err := LogPower(frames, 8, true); err != nil {
		t.Fatalf("LogPower error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, frames.RawRowView(0), data, 0)
}

func TestAnalyzeMatchesIndividualCalls(t *testing.T) {
	frames := framesOf(testutil.DeterministicNoise(11, 1, 48), testutil.DeterministicNoise(12, 1, 48))

	sg, err := Analyze(frames, 64, true)
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if sg.NFFT != 64 {
		t.Fatalf("NFFT=%d, want 64", sg.NFFT)
	}

	mag, _ := Magnitude(frames, 64)
	pow, _ := Power(frames, 64)
	logPow, _ := LogPower(frames, 64, true)

	testutil.RequireMatrixNearlyEqual(t, sg.Magnitude, mag, 1e-12)
	testutil.RequireMatrixNearlyEqual(t, sg.Power, pow, 1e-12)
	testutil.RequireMatrixNearlyEqual(t, sg.LogPower, logPow, 1e-9)
}

func TestInvalidNFFT(t *testing.T) {
	frames := framesOf(testutil.DC(1, 4))

	for _, nfft := range []int{0, -8} {
		if _, err := Magnitude(frames, nfft); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("Magnitude nfft=%d: err=%v", nfft, err)
		}
		if _, err := Power(frames, nfft); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("Power nfft=%d: err=%v", nfft, err)
		}
		if _, err := LogPower(frames, nfft, true); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("LogPower nfft=%d: err=%v", nfft, err)
		}
		if _, err := Analyze(frames, nfft, true); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("Analyze nfft=%d: err=%v", nfft, err)
		}
	}
}

func TestEmptyFrames(t *testing.T) {
	if _, err := Magnitude(&mat.Dense{}, 8); !errors.Is(err, core.ErrShapeMismatch) {
		t.Fatalf("err=%v, want ErrShapeMismatch", err)
	}
}
