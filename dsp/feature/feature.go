// Package feature chains pre-emphasis, framing and spectral analysis into a
// configured speech front-end, and provides the matching resynthesis path.
package feature

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sri-dsa/Speech-Recognition/dsp/core"
	"github.com/sri-dsa/Speech-Recognition/dsp/frame"
	"github.com/sri-dsa/Speech-Recognition/dsp/signal"
	"github.com/sri-dsa/Speech-Recognition/dsp/spectrum"
	"github.com/sri-dsa/Speech-Recognition/dsp/window"
)

// Extractor runs a validated [Config]. It holds no mutable state and may be
// shared between goroutines.
type Extractor struct {
	cfg    Config
	win    window.Window
	length int
	step   int
}

// Result is the output of [Extractor.Extract].
type Result struct {
	// Frames are the windowed analysis frames, one per row.
	Frames *mat.Dense
	*spectrum.Spectrogram
}

// New validates cfg and returns an Extractor for it.
func New(cfg Config) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []window.Option
	if cfg.Periodic {
		opts = append(opts, window.WithPeriodic())
	}

	win, err := window.Parse(cfg.Window, opts...)
	if err != nil {
		return nil, err
	}

	// Validate has already checked both sizes.
	length, _ := core.RoundSamples("frame length", cfg.SampleRate*cfg.WinLength)
	step, _ := core.RoundSamples("frame step", cfg.SampleRate*cfg.WinStep)

	return &Extractor{cfg: cfg, win: win, length: length, step: step}, nil
}

// Config returns the extractor configuration.
func (e *Extractor) Config() Config {
	return e.cfg
}

// Window returns the analysis window.
func (e *Extractor) Window() window.Window {
	return e.win
}

// FrameLength returns the frame length in samples.
func (e *Extractor) FrameLength() int {
	return e.length
}

// FrameStep returns the frame step in samples.
func (e *Extractor) FrameStep() int {
	return e.step
}

// Extract pre-emphasizes (when configured), frames and analyzes x.
func (e *Extractor) Extract(x []float64) (*Result, error) {
	if e.cfg.PreEmphasis > 0 {
		x = signal.PreEmphasis(x, e.cfg.PreEmphasis)
	}

	frames, err := frame.Frame(x, float64(e.length), float64(e.step), e.win)
	if err != nil {
		return nil, err
	}

	sg, err := spectrum.Analyze(frames, e.cfg.NFFT, e.cfg.Normalize)
	if err != nil {
		return nil, err
	}

	return &Result{Frames: frames, Spectrogram: sg}, nil
}

// Resynthesize rebuilds a signal of signalLength samples from frames by
// normalized overlap-add, undoing pre-emphasis when it is configured.
func (e *Extractor) Resynthesize(frames mat.Matrix, signalLength int) ([]float64, error) {
	y, err := frame.Deframe(frames, signalLength, float64(e.length), float64(e.step), e.win)
	if err != nil {
		return nil, err
	}

	if e.cfg.PreEmphasis > 0 {
		y = signal.DeEmphasis(y, e.cfg.PreEmphasis)
	}

	return y, nil
}
