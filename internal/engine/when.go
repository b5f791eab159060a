package engine

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/dateview/internal/config"
)

// When describes i relative to the clock's current time, e.g.
// "1 years 2 months 3 days from now". The clock is read exactly once.
func (i Instant) When(clock Clock) string {
	now := NewInstant(clock)
	out := i.Describe(now)
	slog.Debug(config.MsgDescribed,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDeltaMs, i.Sub(now),
		config.LogKeyResult, out,
	)
	return out
}

// Describe renders the signed distance from now to i.
//
// Whole days are bucketed greedily into 365-day years and 30-day months,
// using strict thresholds: exactly 365 days is not a year and exactly 30
// days is not a month. Hour and minute parts come from the floored total
// hours and minutes with a truncating remainder, so they keep the sign of
// the difference. Seconds are only reported when no other unit is.
// Units are always plural.
func (i Instant) Describe(now Instant) string {
	deltaMs := i.Sub(now)

	deltaDays := floorDiv(deltaMs, config.MillisPerDay)
	hoursDiff := floorDiv(deltaMs, config.SecondsPerHour*config.MillisPerSecond) % config.HoursPerDay
	minutesDiff := floorDiv(deltaMs, config.SecondsPerMin*config.MillisPerSecond) % config.MinutesPerHour
	secondsDiff := floorDiv(deltaMs, config.MillisPerSecond) % config.SecondsPerMin

	var parts []string
	remaining := abs(deltaDays)

	if remaining > config.DaysPerYear {
		years := remaining / config.DaysPerYear
		parts = append(parts, bucket(years, config.UnitYears))
		remaining -= years * config.DaysPerYear
	}
	if remaining > config.DaysPerMonth {
		months := remaining / config.DaysPerMonth
		parts = append(parts, bucket(months, config.UnitMonths))
		remaining -= months * config.DaysPerMonth
	}
	if remaining > 0 {
		parts = append(parts, bucket(remaining, config.UnitDays))
	}
	if hoursDiff != 0 {
		parts = append(parts, bucket(abs(hoursDiff), config.UnitHours))
	}
	if minutesDiff != 0 {
		parts = append(parts, bucket(abs(minutesDiff), config.UnitMinutes))
	}

	if len(parts) == 0 {
		if secondsDiff == 0 {
			return config.PhraseToday
		}
		return bucket(abs(secondsDiff), config.UnitSeconds) + " " + direction(secondsDiff > 0)
	}

	return strings.Join(parts, " ") + " " + direction(i.After(now))
}

// Describe is Instant.Describe for plain times.
func Describe(target, now time.Time) string {
	return FromTime(target).Describe(FromTime(now))
}

func bucket(n int64, unit string) string {
	return strconv.FormatInt(n, 10) + " " + unit
}

func direction(future bool) string {
	if future {
		return config.SuffixFuture
	}
	return config.SuffixPast
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
