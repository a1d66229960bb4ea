package feature

import (
	"fmt"
	"math"

	"github.com/sri-dsa/Speech-Recognition/dsp/core"
	"github.com/sri-dsa/Speech-Recognition/dsp/signal"
	"github.com/sri-dsa/Speech-Recognition/dsp/window"
)

// Config describes a framing and spectral analysis front-end. Durations are
// in seconds; frame sizes in samples are SampleRate*WinLength and
// SampleRate*WinStep.
type Config struct {
	SampleRate float64 `yaml:"sample_rate" json:"sample_rate" mapstructure:"sample_rate"`
	WinLength  float64 `yaml:"win_length" json:"win_length" mapstructure:"win_length"`
	WinStep    float64 `yaml:"win_step" json:"win_step" mapstructure:"win_step"`
	NFFT       int     `yaml:"nfft" json:"nfft" mapstructure:"nfft"`

	// PreEmphasis is the pre-emphasis coefficient; 0 disables the filter.
	PreEmphasis float64 `yaml:"pre_emphasis" json:"pre_emphasis" mapstructure:"pre_emphasis"`

	Window    string `yaml:"window" json:"window" mapstructure:"window"`
	Periodic  bool   `yaml:"periodic" json:"periodic" mapstructure:"periodic"`
	Normalize bool   `yaml:"normalize" json:"normalize" mapstructure:"normalize"`
}

// DefaultConfig returns a 16 kHz speech front-end: 25 ms Hamming frames every
// 10 ms, a 512-point FFT, 0.95 pre-emphasis and normalized log power.
func DefaultConfig() Config {
	return Config{
		SampleRate:  16000,
		WinLength:   0.025,
		WinStep:     0.01,
		NFFT:        512,
		PreEmphasis: signal.DefaultPreEmphasis,
		Window:      "hamming",
		Normalize:   true,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if !(c.SampleRate > 0) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", core.ErrInvalidParameter, c.SampleRate)
	}
	if _, err := core.RoundSamples("frame length", c.SampleRate*c.WinLength); err != nil {
		return err
	}
	if _, err := core.RoundSamples("frame step", c.SampleRate*c.WinStep); err != nil {
		return err
	}
	if c.NFFT <= 0 {
		return fmt.Errorf("%w: nfft must be > 0: %d", core.ErrInvalidParameter, c.NFFT)
	}
	if c.PreEmphasis < 0 || c.PreEmphasis >= 1 || math.IsNaN(c.PreEmphasis) {
		return fmt.Errorf("%w: pre-emphasis must be in [0,1): %v", core.ErrInvalidParameter, c.PreEmphasis)
	}
	if _, err := window.Parse(c.Window); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidParameter, err)
	}

	return nil
}
