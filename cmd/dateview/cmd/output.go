package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tartampluch/dateview/internal/config"
	"github.com/tartampluch/dateview/internal/engine"
	"gopkg.in/yaml.v3"
)

// fieldsView is the CalendarView of an Instant as printed by `fields`.
type fieldsView struct {
	Year         int    `json:"year" yaml:"year"`
	ShortYear    int    `json:"short_year" yaml:"short_year"`
	MonthIndex   int    `json:"month_index" yaml:"month_index"`
	Month        string `json:"month" yaml:"month"`
	Mon          string `json:"mon" yaml:"mon"`
	WeekdayIndex int    `json:"weekday_index" yaml:"weekday_index"`
	Day          string `json:"day" yaml:"day"`
	Dy           string `json:"dy" yaml:"dy"`
	Date         int    `json:"date" yaml:"date"`
	Hours        int    `json:"hours" yaml:"hours"`
	Mins         int    `json:"mins" yaml:"mins"`
	Secs         int    `json:"secs" yaml:"secs"`
	Ordinal      string `json:"ordinal" yaml:"ordinal"`
	EpochMillis  int64  `json:"epoch_ms" yaml:"epoch_ms"`
}

func newFieldsView(i engine.Instant) fieldsView {
	return fieldsView{
		Year:         i.Year(),
		ShortYear:    i.ShortYear(),
		MonthIndex:   i.MonthIndex(),
		Month:        i.Month(),
		Mon:          i.Mon(),
		WeekdayIndex: i.WeekdayIndex(),
		Day:          i.Day(),
		Dy:           i.Dy(),
		Date:         i.Date(),
		Hours:        i.Hours(),
		Mins:         i.Mins(),
		Secs:         i.Secs(),
		Ordinal:      i.Ordinal(),
		EpochMillis:  i.EpochMillis(),
	}
}

// writeFields prints v in the requested format.
func writeFields(w io.Writer, format string, v fieldsView) error {
	switch format {
	case config.OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case config.OutputYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case config.OutputText, "":
		return writeFieldsText(w, v)
	default:
		return fmt.Errorf("%s: %q", config.ErrUnknownOutput, format)
	}
}

func writeFieldsText(w io.Writer, v fieldsView) error {
	rows := []struct {
		key   string
		value any
	}{
		{"year", v.Year},
		{"short_year", v.ShortYear},
		{"month_index", v.MonthIndex},
		{"month", v.Month},
		{"mon", v.Mon},
		{"weekday_index", v.WeekdayIndex},
		{"day", v.Day},
		{"dy", v.Dy},
		{"date", v.Date},
		{"hours", v.Hours},
		{"mins", v.Mins},
		{"secs", v.Secs},
		{"ordinal", v.Ordinal},
		{"epoch_ms", v.EpochMillis},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-14s %v\n", r.key+":", r.value); err != nil {
			return err
		}
	}
	return nil
}
