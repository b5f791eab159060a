package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tartampluch/dateview/internal/config"
	"github.com/tartampluch/dateview/internal/engine"
)

func newFieldsCmd(opts *rootOptions) *cobra.Command {
	var (
		src    dateSource
		output string
	)

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Print the calendar fields of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := src.resolve(cmd, engine.NewInstant(opts.clock))
			if err != nil {
				return err
			}
			return writeFields(cmd.OutOrStdout(), output, newFieldsView(at))
		},
	}
	src.register(cmd)
	cmd.Flags().StringVarP(&output, config.FlagOutput, "o", config.OutputText, config.FlagDescOutput)
	return cmd
}
