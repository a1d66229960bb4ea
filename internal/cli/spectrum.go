package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/sri-dsa/Speech-Recognition/dsp/feature"
)

type spectrumReport struct {
	Kind        string      `json:"kind" yaml:"kind"`
	SampleRate  float64     `json:"sample_rate" yaml:"sample_rate"`
	FrameLength int         `json:"frame_length" yaml:"frame_length"`
	FrameStep   int         `json:"frame_step" yaml:"frame_step"`
	NFFT        int         `json:"nfft" yaml:"nfft"`
	Frames      int         `json:"frames" yaml:"frames"`
	Bins        int         `json:"bins" yaml:"bins"`
	Data        [][]float64 `json:"data" yaml:"data"`
}

func (r *spectrumReport) writeTable(w io.Writer) error {
	header := []string{"frame"}
	for k := range r.Bins {
		header = append(header, fmt.Sprintf("bin%d", k))
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}

	for i, row := range r.Data {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, fmt.Sprintf("%d", i))
		for _, v := range row {
			cells = append(cells, fmt.Sprintf("%.4f", v))
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return nil
}

func newSpectrumCommand(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "spectrum [file]",
		Short: "Print the per-frame spectrum of a signal",
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

			report, err := buildSpectrumReport(cfg, samples, kind)
			if err != nil {
				return err
			}

			a.logger.Debug("spectrum computed",
				"samples", len(samples),
				"frames", report.Frames,
				"frame_length", report.FrameLength,
				"frame_step", report.FrameStep,
				"nfft", report.NFFT,
				"kind", report.Kind,
			)

			return writeReport(cmd.OutOrStdout(), a.output, report)
		},
	}

	addAnalysisFlags(cmd.Flags())
	cmd.Flags().StringVar(&kind, "kind", "log-power", "spectrum kind (magnitude, power, log-power)")

	return cmd
}

func buildSpectrumReport(cfg feature.Config, samples []float64, kind string) (*spectrumReport, error) {
	e, err := feature.New(cfg)
	if err != nil {
		return nil, err
	}

	res, err := e.Extract(samples)
	if err != nil {
		return nil, err
	}

	var m *mat.Dense
	switch strings.ToLower(kind) {
	case "magnitude", "mag":
		m, kind = res.Magnitude, "magnitude"
	case "power", "pow":
		m, kind = res.Power, "power"
	case "log-power", "logpower", "log":
		m, kind = res.LogPower, "log-power"
	default:
		return nil, fmt.Errorf("unsupported spectrum kind %q (magnitude, power, log-power)", kind)
	}

	rows, cols := m.Dims()

	return &spectrumReport{
		Kind:        kind,
		SampleRate:  cfg.SampleRate,
		FrameLength: e.FrameLength(),
		FrameStep:   e.FrameStep(),
		NFFT:        cfg.NFFT,
		Frames:      rows,
		Bins:        cols,
		Data:        rowsOf(m),
	}, nil
}
