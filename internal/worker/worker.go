package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
	"github.com/tartampluch/dateview/internal/config"
	"github.com/tartampluch/dateview/internal/engine"
)

// Renderer produces the calendar feed.
type Renderer interface {
	RenderCalendar(ctx context.Context, milestones []engine.Milestone) ([]byte, error)
}

// Publisher receives each freshly rendered feed.
type Publisher interface {
	Update(data []byte)
}

// Refresher re-renders the feed on a cron schedule so that relative
// descriptions ("3 days from now") stay current.
type Refresher struct {
	Schedule   string
	Renderer   Renderer
	Publisher  Publisher
	Milestones []engine.Milestone
}

// Refresh renders once and publishes the result.
func (r *Refresher) Refresh(ctx context.Context) error {
	data, err := r.Renderer.RenderCalendar(ctx, r.Milestones)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrRender, err)
	}
	r.Publisher.Update(data)
	return nil
}

// Run publishes an initial render, then refreshes on the schedule until ctx
// is cancelled. Only an invalid schedule or a failed initial render are
// returned; later failures are logged and the previous feed stays served.
func (r *Refresher) Run(ctx context.Context) error {
	log := slog.With(config.LogKeyComponent, config.CompSched)

	sched, err := cron.ParseStandard(r.Schedule)
	if err != nil {
		return fmt.Errorf("%s %q: %w", config.ErrRefreshSpec, r.Schedule, err)
	}

	if err := r.Refresh(ctx); err != nil {
		return err
	}

	c := cron.New()
	c.Schedule(sched, cron.FuncJob(func() {
		if err := r.Refresh(ctx); err != nil {
			log.Warn(config.MsgRefreshFail, config.LogKeyError, err)
		}
	}))
	c.Start()
	log.Info(config.MsgSchedStart, config.LogKeyRefresh, r.Schedule)

	<-ctx.Done()
	<-c.Stop().Done()
	log.Info(config.MsgSchedStop)
	return nil
}
