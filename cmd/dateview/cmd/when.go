package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tartampluch/dateview/internal/engine"
)

func newWhenCmd(opts *rootOptions) *cobra.Command {
	var src dateSource

	cmd := &cobra.Command{
		Use:   "when",
		Short: "Describe a date relative to now",
		Example: `  dateview when --at 2030-01-01
  dateview when --parts 2019,0,2,3,4,5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := engine.NewInstant(opts.clock)
			at, err := src.resolve(cmd, now)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), at.Describe(now))
			return err
		},
	}
	src.register(cmd)
	return cmd
}
