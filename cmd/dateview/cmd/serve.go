package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/tartampluch/dateview/internal/config"
	"github.com/tartampluch/dateview/internal/engine"
	"github.com/tartampluch/dateview/internal/server"
	"github.com/tartampluch/dateview/internal/worker"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the milestone feed and format/when lookups over HTTP",
		Long: `Serve the milestone calendar at / and JSON lookups at
/format?at=...&mask=... and /when?at=... on 127.0.0.1.

The feed is re-rendered on the configured cron schedule so that the
relative descriptions stay current.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = opts.file.Port
			}
			if err := config.ValidatePort(port); err != nil {
				return err
			}

			milestones, err := engine.MilestonesFromConfig(opts.file.Milestones)
			if err != nil {
				return err
			}

			srv := server.NewFeedServer(port, opts.clock, opts.file.Mask)
			refresher := &worker.Refresher{
				Schedule:   opts.file.Refresh,
				Renderer:   &engine.Generator{Clock: opts.clock, Mask: opts.file.Mask},
				Publisher:  srv,
				Milestones: milestones,
			}
			return runServe(cmd.Context(), srv, refresher)
		},
	}
	cmd.Flags().StringVar(&port, config.FlagPort, "", config.FlagDescPort)
	return cmd
}

// runServe runs the server and the refresher until ctx is cancelled or
// either of them fails, then stops the other.
func runServe(ctx context.Context, srv *server.FeedServer, refresher *worker.Refresher) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() { errCh <- srv.Start(ctx) }()
	go func() { errCh <- refresher.Run(ctx) }()

	first := <-errCh
	cancel()
	second := <-errCh
	return errors.Join(first, second)
}
