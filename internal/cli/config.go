package cli

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sri-dsa/Speech-Recognition/dsp/feature"
)

// analysisFlags lists the flags that map onto feature.Config keys.
var analysisFlags = map[string]struct{}{
	"sample-rate":  {},
	"win-length":   {},
	"win-step":     {},
	"nfft":         {},
	"pre-emphasis": {},
	"window":       {},
	"periodic":     {},
	"normalize":    {},
}

func setDefaults(v *viper.Viper) {
	d := feature.DefaultConfig()
	v.SetDefault("sample_rate", d.SampleRate)
	v.SetDefault("win_length", d.WinLength)
	v.SetDefault("win_step", d.WinStep)
	v.SetDefault("nfft", d.NFFT)
	v.SetDefault("pre_emphasis", d.PreEmphasis)
	v.SetDefault("window", d.Window)
	v.SetDefault("periodic", d.Periodic)
	v.SetDefault("normalize", d.Normalize)
}

func addAnalysisFlags(fs *pflag.FlagSet) {
	d := feature.DefaultConfig()
	fs.Float64("sample-rate", d.SampleRate, "sample rate in Hz")
	fs.Float64("win-length", d.WinLength, "frame length in seconds")
	fs.Float64("win-step", d.WinStep, "frame step in seconds")
	fs.Int("nfft", d.NFFT, "FFT size")
	fs.Float64("pre-emphasis", d.PreEmphasis, "pre-emphasis coefficient (0 disables)")
	fs.String("window", d.Window, "analysis window (rectangular, hann, hamming, blackman)")
	fs.Bool("periodic", d.Periodic, "use the periodic window form")
	fs.Bool("normalize", d.Normalize, "normalize log power so its maximum is 0 dB")
}

// analysisConfig resolves flags, environment, config file and defaults into
// a validated feature.Config.
func (a *app) analysisConfig() (feature.Config, error) {
	var cfg feature.Config
	if err := a.v.Unmarshal(&cfg); err != nil {
		return feature.Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return feature.Config{}, err
	}
	return cfg, nil
}
