package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/sri-dsa/Speech-Recognition/dsp/feature"
)

type roundTripReport struct {
	Samples     int     `json:"samples" yaml:"samples"`
	Frames      int     `json:"frames" yaml:"frames"`
	FrameLength int     `json:"frame_length" yaml:"frame_length"`
	FrameStep   int     `json:"frame_step" yaml:"frame_step"`
	Window      string  `json:"window" yaml:"window"`
	MaxAbsError float64 `json:"max_abs_error" yaml:"max_abs_error"`
	RMSError    float64 `json:"rms_error" yaml:"rms_error"`
}

func (r *roundTripReport) writeTable(w io.Writer) error {
	_, err := fmt.Fprintf(w, "samples\tframes\tlength\tstep\twindow\tmax abs error\trms error\n%d\t%d\t%d\t%d\t%s\t%.3e\t%.3e\n",
		r.Samples, r.Frames, r.FrameLength, r.FrameStep, r.Window, r.MaxAbsError, r.RMSError)
	return err
}

func newRoundTripCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip [file]",
		Short: "Frame a signal, resynthesize it by overlap-add and report the error",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.analysisConfig()
			if err != nil {
				return err
			}

			samples, err := loadSamples(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			report, err := buildRoundTripReport(cfg, samples)
			if err != nil {
				return err
			}

			a.logger.Debug("round trip finished",
				"samples", report.Samples,
				"frames", report.Frames,
				"max_abs_error", report.MaxAbsError,
			)

			return writeReport(cmd.OutOrStdout(), a.output, report)
		},
	}

	addAnalysisFlags(cmd.Flags())

	return cmd
}

func buildRoundTripReport(cfg feature.Config, samples []float64) (*roundTripReport, error) {
	e, err := feature.New(cfg)
	if err != nil {
		return nil, err
	}

	res, err := e.Extract(samples)
	if err != nil {
		return nil, err
	}

	y, err := e.Resynthesize(res.Frames, len(samples))
	if err != nil {
		return nil, err
	}

	rows, _ := res.Frames.Dims()
	report := &roundTripReport{
		Samples:     len(samples),
		Frames:      rows,
		FrameLength: e.FrameLength(),
		FrameStep:   e.FrameStep(),
		Window:      cfg.Window,
	}

	sum := 0.0
	for i, want := range samples {
		d := math.Abs(y[i] - want)
		report.MaxAbsError = math.Max(report.MaxAbsError, d)
		sum += d * d
	}
	if len(samples) > 0 {
		report.RMSError = math.Sqrt(sum / float64(len(samples)))
	}

	return report, nil
}
