package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tartampluch/dateview/internal/config"
)

// Format renders i according to mask. Each rune of the mask is handled on
// its own: recognized tokens are replaced by a date field, anything else is
// copied verbatim. There is no escaping and no multi-character token.
//
//	Y full year        y two-digit year
//	M month name       m abbreviated month name
//	D day, 2 digits    d day
//	H hour, 2 digits   h hour
//	I minute, 2 digits i minute
//	S second, 2 digits s second
//	W weekday name     w abbreviated weekday name
//	# ordinal day of month ("2nd")
func (i Instant) Format(mask string) string {
	var b strings.Builder
	b.Grow(len(mask) * 2)

	for _, r := range mask {
		switch r {
		case 'Y':
			b.WriteString(strconv.Itoa(i.Year()))
		case 'y':
			b.WriteString(strconv.Itoa(i.ShortYear()))
		case 'M':
			b.WriteString(i.Month())
		case 'm':
			b.WriteString(i.Mon())
		case 'D':
			b.WriteString(pad(i.Date()))
		case 'd':
			b.WriteString(strconv.Itoa(i.Date()))
		case 'H':
			b.WriteString(pad(i.Hours()))
		case 'h':
			b.WriteString(strconv.Itoa(i.Hours()))
		case 'I':
			b.WriteString(pad(i.Mins()))
		case 'i':
			b.WriteString(strconv.Itoa(i.Mins()))
		case 'S':
			b.WriteString(pad(i.Secs()))
		case 's':
			b.WriteString(strconv.Itoa(i.Secs()))
		case 'W':
			b.WriteString(i.Day())
		case 'w':
			b.WriteString(i.Dy())
		case '#':
			b.WriteString(i.Ordinal())
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatDefault renders i with config.DefaultMask ("Y M D").
func (i Instant) FormatDefault() string {
	return i.Format(config.DefaultMask)
}

// String implements fmt.Stringer using the default mask.
func (i Instant) String() string {
	return i.FormatDefault()
}

func pad(n int) string {
	return fmt.Sprintf("%0*d", config.PadWidth, n)
}
