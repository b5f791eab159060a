package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tartampluch/dateview/internal/config"
	"github.com/tartampluch/dateview/internal/engine"
)

// dateSource collects the mutually exclusive ways of naming a date.
type dateSource struct {
	at    string
	epoch int64
	parts []string
}

func (s *dateSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.at, config.FlagAt, "", config.FlagDescAt)
	cmd.Flags().Int64Var(&s.epoch, config.FlagEpoch, 0, config.FlagDescEpoch)
	cmd.Flags().StringSliceVar(&s.parts, config.FlagParts, nil, config.FlagDescParts)
}

// resolve returns the Instant named by the flags, or now when none is set.
func (s *dateSource) resolve(cmd *cobra.Command, now engine.Instant) (engine.Instant, error) {
	flags := cmd.Flags()
	set := 0
	for _, name := range []string{config.FlagAt, config.FlagEpoch, config.FlagParts} {
		if flags.Changed(name) {
			set++
		}
	}
	if set > 1 {
		return engine.Instant{}, errors.New(config.ErrDateSourceCount)
	}

	switch {
	case flags.Changed(config.FlagAt):
		return engine.Parse(s.at)
	case flags.Changed(config.FlagEpoch):
		return engine.FromEpochMillis(s.epoch)
	case flags.Changed(config.FlagParts):
		if len(s.parts) < 2 || len(s.parts) > 7 {
			return engine.Instant{}, fmt.Errorf("%w: %s", engine.ErrInvalidInstant, config.ErrComponentCount)
		}
		parts, err := parseParts(s.parts)
		if err != nil {
			return engine.Instant{}, err
		}
		return engine.FromComponents(parts[0], parts[1], parts[2:]...)
	default:
		return now, nil
	}
}

func parseParts(raw []string) ([]int, error) {
	out := make([]int, 0, len(raw))
	for _, p := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q", engine.ErrInvalidInstant, config.ErrComponentValue, p)
		}
		out = append(out, n)
	}
	return out, nil
}
