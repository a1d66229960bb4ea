package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sri-dsa/Speech-Recognition/dsp/window"
)

type windowRow struct {
	Name            string `json:"name" yaml:"name"`
	window.Analysis `yaml:",inline"`
}

type windowsReport struct {
	Periodic bool        `json:"periodic" yaml:"periodic"`
	Windows  []windowRow `json:"windows" yaml:"windows"`
}

func (r *windowsReport) writeTable(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]"); err != nil {
		return err
	}
	for _, row := range r.Windows {
		a := row.Analysis
		if _, err := fmt.Fprintf(w, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			row.Name, a.Length, a.CoherentGain, a.ENBW, a.Bandwidth3dB,
			a.HighestSidelobe, a.FirstNull, a.ScallopLoss); err != nil {
			return err
		}
	}
	return nil
}

func buildWindowsReport(names []string, size int, periodic bool) (*windowsReport, error) {
	if size <= 0 {
		return nil, fmt.Errorf("window size must be > 0: %d", size)
	}
	if len(names) == 0 {
		names = window.Names()
	}

	var opts []window.Option
	if periodic {
		opts = append(opts, window.WithPeriodic())
	}

	report := &windowsReport{Periodic: periodic}
	for _, name := range names {
		w, err := window.Parse(name, opts...)
		if err != nil {
			return nil, err
		}
		report.Windows = append(report.Windows, windowRow{
			Name:     name,
			Analysis: window.Analyze(w, size),
		})
	}
	return report, nil
}

func newWindowsCommand(a *app) *cobra.Command {
	var (
		size     int
		periodic bool
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "windows [name...]",
		Short: "List analysis windows and their spectral properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, name := range window.Names() {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
						return err
					}
				}
				return nil
			}

			report, err := buildWindowsReport(args, size, periodic)
			if err != nil {
				return err
			}
			a.logger.Debug("windows analyzed", "count", len(report.Windows), "size", size)

			return writeReport(cmd.OutOrStdout(), a.output, report)
		},
	}

	cmd.Flags().IntVar(&size, "size", 512, "window length in samples")
	cmd.Flags().BoolVar(&periodic, "periodic", false, "analyze the periodic window form")
	cmd.Flags().BoolVar(&list, "list", false, "print window names only")

	return cmd
}
