package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tartampluch/dateview/internal/engine"
)

func newICSCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ics",
		Short: "Print the configured milestones as an iCalendar feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			milestones, err := engine.MilestonesFromConfig(opts.file.Milestones)
			if err != nil {
				return err
			}

			gen := &engine.Generator{Clock: opts.clock, Mask: opts.file.Mask}
			data, err := gen.RenderCalendar(cmd.Context(), milestones)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
