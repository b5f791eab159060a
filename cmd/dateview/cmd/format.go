package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tartampluch/dateview/internal/engine"
)

func newFormatCmd(opts *rootOptions) *cobra.Command {
	var src dateSource

	cmd := &cobra.Command{
		Use:   "format [mask]",
		Short: "Render a date with a mask",
		Long: `Render a date with a mask. Every character of the mask is replaced on its own:

  Y full year          y two-digit year
  M month name         m abbreviated month name
  D day (2 digits)     d day
  H hour (2 digits)    h hour
  I minute (2 digits)  i minute
  S second (2 digits)  s second
  W weekday name       w abbreviated weekday name
  # ordinal day ("2nd")

Any other character is copied as is. Without a mask argument the
configured mask is used ("Y M D" by default).`,
		Example: `  dateview format 'M #, Y' --at 2017-01-02
  dateview format 'y/m/d' --parts 2017,0,2
  dateview format --epoch 0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := src.resolve(cmd, engine.NewInstant(opts.clock))
			if err != nil {
				return err
			}

			mask := opts.file.Mask
			if len(args) == 1 {
				mask = args[0]
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), at.Format(mask))
			return err
		},
	}
	src.register(cmd)
	return cmd
}
