package window

import "math"

// Analysis holds spectral figures of merit for one window at one length.
// Frequencies are in DFT bins of that length; levels are in dB relative to
// the DC response.
type Analysis struct {
	Length int `json:"length" yaml:"length"`
	// CoherentGain is sum(w)/N, the amplitude scaling of an on-bin tone.
	CoherentGain float64 `json:"coherent_gain" yaml:"coherent_gain"`
	// ENBW is the equivalent noise bandwidth.
	ENBW float64 `json:"enbw" yaml:"enbw"`
	// Bandwidth3dB is the two-sided half-power main lobe width.
	Bandwidth3dB float64 `json:"bandwidth_3db" yaml:"bandwidth_3db"`
	// FirstNull is the distance from DC to the first main lobe minimum.
	FirstNull float64 `json:"first_null" yaml:"first_null"`
	// HighestSidelobe is the loudest sidelobe past the first null.
	HighestSidelobe float64 `json:"highest_sidelobe_db" yaml:"highest_sidelobe_db"`
	// ScallopLoss is the response half a bin off center.
	ScallopLoss float64 `json:"scallop_loss_db" yaml:"scallop_loss_db"`
}

// Analyze evaluates w at length samples and measures its frequency response
// numerically. A nil w is [Rectangular]. Lengths below 1 and windows with no
// DC response yield a zero Analysis with only Length set.
func Analyze(w Window, length int) Analysis {
	a := Analysis{Length: length}
	if length <= 0 {
		return a
	}

	coeffs := OrDefault(w).Generate(length)
	if len(coeffs) != length {
		return a
	}

	r := response{coeffs: coeffs, bins: float64(length)}
	r.dc = r.at(0)
	if r.dc == 0 {
		return a
	}

	sum, sumSq := 0.0, 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	a.CoherentGain = sum / r.bins
	a.ENBW = r.bins * sumSq / (sum * sum)
	a.ScallopLoss = r.db(0.5)
	a.Bandwidth3dB = 2 * r.halfPower()
	a.FirstNull = r.firstNull()
	a.HighestSidelobe = r.db(r.sidelobePeak(a.FirstNull))

	return a
}

// response evaluates |W(f)|^2 of a coefficient set at f given in bins.
type response struct {
	coeffs []float64
	bins   float64
	dc     float64
}

func (r response) at(bin float64) float64 {
	w := 2 * math.Pi * bin / r.bins

	re, im := 0.0, 0.0
	for k, c := range r.coeffs {
		s, co := math.Sincos(w * float64(k))
		re += c * co
		im -= c * s
	}

	return re*re + im*im
}

// db returns the response at bin relative to DC.
func (r response) db(bin float64) float64 {
	v := r.at(bin)
	if v <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(v/r.dc)
}

// nyquist is the highest searchable frequency in bins.
func (r response) nyquist() float64 {
	return r.bins / 2
}

// halfPower bisects for the one-sided -3 dB point of the main lobe.
func (r response) halfPower() float64 {
	lo, hi := 0.0, r.nyquist()
	for range 80 {
		mid := (lo + hi) / 2
		if r.at(mid)/r.dc > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// firstNull scans outward in eighth-bin steps for the first local minimum
// below 10% of DC, then refines it with a golden-section search.
func (r response) firstNull() float64 {
	const step = 0.125

	coarse := step
	prev := r.dc
	for f := step; f < r.nyquist(); f += step {
		v := r.at(f)
		if prev < 0.1*r.dc && v > prev {
			coarse = f - step
			break
		}
		prev = v
	}

	a := math.Max(coarse-2*step, 0)
	b := math.Min(coarse+2*step, r.nyquist())

	const phi = 0.6180339887498949
	for range 80 {
		c := b - phi*(b-a)
		d := a + phi*(b-a)
		if r.at(c) < r.at(d) {
			b = d
		} else {
			a = c
		}
	}

	return (a + b) / 2
}

// sidelobePeak returns the bin of the largest response between from and
// Nyquist.
func (r response) sidelobePeak(from float64) float64 {
	const step = 0.125

	peak, peakBin := 0.0, from
	for f := from; f < r.nyquist(); f += step {
		if v := r.at(f); v > peak {
			peak, peakBin = v, f
		}
	}

	best := peakBin
	for f := math.Max(peakBin-step, 0); f <= peakBin+step; f += step / 32 {
		if v := r.at(f); v > peak {
			peak, best = v, f
		}
	}

	return best
}
