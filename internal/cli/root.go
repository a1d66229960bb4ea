// Package cli implements the specgram command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SPECGRAM"

// app carries state shared by all subcommands of one invocation.
type app struct {
	v      *viper.Viper
	logger *slog.Logger

	configFile string
	logLevel   string
	output     string
}

// NewRootCommand builds the specgram command tree. Regular output goes to
// the command's out writer, logs to its err writer.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "specgram",
		Short: "Framing and spectral analysis for speech front-ends",
		Long: `specgram splits a signal into overlapping windowed frames, computes
magnitude, power or log-power spectra, and resynthesizes signals from frames
by normalized overlap-add.

Samples are read as whitespace or comma separated numbers from a file or
standard input. Lines starting with '#' are ignored.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "",
		"YAML config file with analysis settings")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "table",
		"output format (table, json, yaml)")

	root.AddCommand(
		newSpectrumCommand(a),
		newRoundTripCommand(a),
		newWindowsCommand(a),
	)

	return root
}

// Execute runs the command tree with process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) init(cmd *cobra.Command) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.logLevel)

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()
	setDefaults(a.v)

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.configFile, err)
		}
		a.logger.Debug("using config file", "path", a.v.ConfigFileUsed())
	}

	return bindFlags(cmd, a.v)
}

// bindFlags binds every analysis flag of cmd to its viper key. Flag names
// use dashes, keys use underscores.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if _, ok := analysisFlags[f.Name]; !ok {
			return
		}
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			lastErr = err
		}
	})

	return lastErr
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
