package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/dateview/internal/config"
)

// ErrInvalidInstant is returned when a date source cannot be turned into a valid Instant.
var ErrInvalidInstant = errors.New(config.ErrInvalidInstant)

// Instant is an immutable point in time with calendar-field accessors.
// Fields are derived from the wrapped time.Time on every call.
type Instant struct {
	t time.Time
}

// NewInstant returns the current time as reported by clock.
func NewInstant(clock Clock) Instant {
	return Instant{t: clock.Now()}
}

// FromTime wraps an existing time.
func FromTime(t time.Time) Instant {
	return Instant{t: t}
}

// Parse reads s using the first matching entry of config.ParseLayouts.
// Layouts without an explicit zone are read in the local zone.
func Parse(s string) (Instant, error) {
	value := strings.TrimSpace(s)
	for _, layout := range config.ParseLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return Instant{t: t}, nil
		}
	}
	return Instant{}, fmt.Errorf("%w: %s: %q", ErrInvalidInstant, config.ErrDateParse, s)
}

// FromComponents builds a local date from a year, a zero-based month index
// and up to five more components: day, hour, minute, second, millisecond.
// The day defaults to 1. Out-of-range values roll over as in time.Date,
// so FromComponents(2017, 12) is January 2018.
func FromComponents(year, monthIndex int, rest ...int) (Instant, error) {
	if len(rest) > 5 {
		return Instant{}, fmt.Errorf("%w: %s", ErrInvalidInstant, config.ErrComponentCount)
	}

	parts := [5]int{1, 0, 0, 0, 0}
	copy(parts[:], rest)
	day, hour, minute, sec, ms := parts[0], parts[1], parts[2], parts[3], parts[4]

	t := time.Date(year, time.January+time.Month(monthIndex), day, hour, minute, sec, ms*int(time.Millisecond), time.Local)
	if err := checkRange(t.UnixMilli()); err != nil {
		return Instant{}, err
	}
	return Instant{t: t}, nil
}

// FromEpochMillis converts milliseconds since the Unix epoch into a local Instant.
func FromEpochMillis(ms int64) (Instant, error) {
	if err := checkRange(ms); err != nil {
		return Instant{}, err
	}
	return Instant{t: time.UnixMilli(ms).Local()}, nil
}

func checkRange(ms int64) error {
	if ms > config.MaxEpochMillis || ms < -config.MaxEpochMillis {
		return fmt.Errorf("%w: %s: %d", ErrInvalidInstant, config.ErrEpochRange, ms)
	}
	return nil
}

// Time returns the wrapped time.
func (i Instant) Time() time.Time { return i.t }

// EpochMillis returns the milliseconds elapsed since the Unix epoch.
func (i Instant) EpochMillis() int64 { return i.t.UnixMilli() }

// Year returns the full year, e.g. 2023.
func (i Instant) Year() int { return i.t.Year() }

// ShortYear returns the last two digits of the year, always in [0, 99].
func (i Instant) ShortYear() int {
	return ((i.t.Year() % 100) + 100) % 100
}

// MonthIndex returns the zero-based month, January = 0.
func (i Instant) MonthIndex() int { return int(i.t.Month()) - 1 }

// Month returns the full month name, e.g. "January".
func (i Instant) Month() string { return monthNames[i.MonthIndex()] }

// Mon returns the three-letter month name, e.g. "Jan".
func (i Instant) Mon() string { return monthAbbrevs[i.MonthIndex()] }

// WeekdayIndex returns the zero-based weekday, Sunday = 0.
func (i Instant) WeekdayIndex() int { return int(i.t.Weekday()) }

// Day returns the full weekday name, e.g. "Sunday".
func (i Instant) Day() string { return dayNames[i.WeekdayIndex()] }

// Dy returns the three-letter weekday name, e.g. "Sun".
func (i Instant) Dy() string { return dayAbbrevs[i.WeekdayIndex()] }

// Date returns the day of the month (1-31).
func (i Instant) Date() int { return i.t.Day() }

// Hours returns the hour of the day (0-23).
func (i Instant) Hours() int { return i.t.Hour() }

// Mins returns the minute of the hour (0-59).
func (i Instant) Mins() int { return i.t.Minute() }

// Secs returns the second of the minute (0-59).
func (i Instant) Secs() int { return i.t.Second() }

// Ordinal returns the day of the month with its English suffix, e.g. "2nd".
func (i Instant) Ordinal() string { return Ordinal(i.Date()) }

// Before reports whether i is strictly earlier than other.
func (i Instant) Before(other Instant) bool { return i.t.Before(other.t) }

// After reports whether i is strictly later than other.
func (i Instant) After(other Instant) bool { return i.t.After(other.t) }

// Sub returns i - other in whole milliseconds, rounded toward negative
// infinity. It does not go through time.Duration, which saturates at about
// 292 years.
func (i Instant) Sub(other Instant) int64 {
	secs := i.t.Unix() - other.t.Unix()
	nanos := int64(i.t.Nanosecond() - other.t.Nanosecond())
	return secs*config.MillisPerSecond + floorDiv(nanos, int64(time.Millisecond))
}
