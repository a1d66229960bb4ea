package window

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Window generates the weighting applied to every analysis frame.
//
// Generate must return exactly length coefficients for length > 0 and must
// not retain or share the returned slice.
type Window interface {
	Generate(length int) []float64
}

// Func adapts an ordinary function to the [Window] interface.
type Func func(length int) []float64

// Generate calls f(length).
func (f Func) Generate(length int) []float64 {
	if f == nil || length <= 0 {
		return nil
	}
	return f(length)
}

// Rectangular is the all-ones window. It is the default for framing and
// deframing.
type Rectangular struct{}

// Generate returns length ones.
func (Rectangular) Generate(length int) []float64 {
	if length <= 0 {
		return nil
	}
	out := make([]float64, length)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Hann is the raised-cosine window 0.5 - 0.5*cos(2*pi*n/N).
//
// The periodic form (denominator N instead of N-1) sums to a constant under
// 50% overlap and is the right choice for overlap-add resynthesis.
type Hann struct {
	Periodic bool
}

// Generate returns Hann coefficients.
func (w Hann) Generate(length int) []float64 {
	return generateCosine(length, w.Periodic, hannCoeffs)
}

// Hamming is 0.54 - 0.46*cos(2*pi*n/N), the usual speech front-end window.
type Hamming struct {
	Periodic bool
}

// Generate returns Hamming coefficients.
func (w Hamming) Generate(length int) []float64 {
	return generateCosine(length, w.Periodic, hammingCoeffs)
}

// Blackman is the classic three-term Blackman window (a0 = 0.42).
type Blackman struct {
	Periodic bool
}

// Generate returns Blackman coefficients.
func (w Blackman) Generate(length int) []float64 {
	return generateCosine(length, w.Periodic, blackmanCoeffs)
}

var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

// Option configures [Parse].
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic selects the periodic form (FFT framing) instead of the
// symmetric form. It has no effect on [Rectangular].
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

var byName = map[string]func(cfg config) Window{
	"rectangular": func(config) Window { return Rectangular{} },
	"hann":        func(c config) Window { return Hann{Periodic: c.periodic} },
	"hamming":     func(c config) Window { return Hamming{Periodic: c.periodic} },
	"blackman":    func(c config) Window { return Blackman{Periodic: c.periodic} },
}

var aliases = map[string]string{
	"rect":    "rectangular",
	"ones":    "rectangular",
	"none":    "rectangular",
	"hanning": "hann",
}

// Parse returns the window registered under name. Names are case
// insensitive; an empty name selects [Rectangular].
func Parse(name string, opts ...Option) (Window, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Rectangular{}, nil
	}
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	build, ok := byName[key]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownWindow, name, strings.Join(Names(), ", "))
	}
	return build(cfg), nil
}

// Names returns the registered window names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// OrDefault returns w, or [Rectangular] when w is nil.
func OrDefault(w Window) Window {
	if w == nil {
		return Rectangular{}
	}
	return w
}

func generateCosine(length int, periodic bool, coeffs []float64) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		out[i] = cosineFromCoeffs(samplePosition(i, length, periodic), coeffs)
	}

	return out
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

// samplePosition maps sample n to [0, 1].
func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
