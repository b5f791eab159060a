package engine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/tartampluch/dateview/internal/config"
)

// Milestone is a named date published in the calendar feed.
type Milestone struct {
	Name string
	At   Instant
}

// Generator renders milestones as an iCalendar feed whose events carry the
// formatted date and a relative description.
type Generator struct {
	Clock Clock  // Interface for time mocking.
	Mask  string // Mask used for event summaries; empty means config.DefaultMask.
}

// RenderCalendar builds the feed. The clock is sampled once so that every
// event is described against the same "now".
func (g *Generator) RenderCalendar(ctx context.Context, milestones []Milestone) ([]byte, error) {
	start := time.Now()
	now := NewInstant(g.Clock)

	if len(milestones) == 0 {
		g.logSuccess(0, start)
		return []byte(config.StubVCalendar), nil
	}

	mask := g.Mask
	if mask == "" {
		mask = config.DefaultMask
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.Time().UTC())

	for _, m := range milestones {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, milestoneUID(m))
		event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatSummary, m.Name, m.At.Format(mask)))
		event.Props.SetText(config.PropDescription, m.At.Describe(now))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDateTime(m.At.Time().UTC())
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.logSuccess(len(milestones), start)
	return buf.Bytes(), nil
}

// milestoneUID is stable across renders as long as name and instant are unchanged.
func milestoneUID(m Milestone) string {
	input := fmt.Sprintf(config.FormatUIDInput, m.Name, m.At.Time().UTC().Format(time.RFC3339Nano))
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(input))
	return fmt.Sprintf(config.FormatUID, id.String())
}

func (g *Generator) logSuccess(count int, start time.Time) {
	slog.Info(config.MsgRenderDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, count,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
}

// MilestonesFromConfig parses the configured milestone dates.
func MilestonesFromConfig(entries []config.MilestoneConfig) ([]Milestone, error) {
	out := make([]Milestone, 0, len(entries))
	for _, e := range entries {
		at, err := Parse(e.At)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", config.ErrMilestone, e.Name, err)
		}
		out = append(out, Milestone{Name: e.Name, At: at})
	}
	return out, nil
}
