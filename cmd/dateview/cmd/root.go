// Package cmd implements the dateview CLI commands.
package cmd

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tartampluch/dateview/internal/config"
	"github.com/tartampluch/dateview/internal/engine"
)

// rootOptions is shared by every subcommand.
type rootOptions struct {
	debug      bool
	configPath string

	clock engine.Clock
	file  *config.File
}

// NewRootCmd builds the command tree. The clock decides what "now" means
// for every subcommand.
func NewRootCmd(clock engine.Clock) *cobra.Command {
	opts := &rootOptions{clock: clock, file: config.DefaultFile()}

	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Format dates with masks and describe them relative to now",
		Long: `dateview formats a date with a one-character-per-field mask
(Y y M m D d H h I i S s W w #) and describes how far it is from now,
e.g. "1 years 2 months 3 days from now".

It can also publish a calendar feed of named milestones.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.debug)

			f, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.file = f
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&opts.debug, config.FlagDebug, false, config.FlagDescDebug)
	root.PersistentFlags().StringVar(&opts.configPath, config.FlagConfig, "", config.FlagDescConfig)

	root.AddCommand(
		newFormatCmd(opts),
		newWhenCmd(opts),
		newFieldsCmd(opts),
		newICSCmd(opts),
		newServeCmd(opts),
		newVersionCmd(),
	)
	return root
}

// setupLogging installs a JSON slog handler on w. Stdout is left to command output.
func setupLogging(w io.Writer, debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))

	slog.Debug(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
	)
}
