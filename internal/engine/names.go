package engine

import "strconv"

// Index-aligned with MonthIndex and WeekdayIndex.
var (
	monthNames = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	monthAbbrevs = [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	dayNames = [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
	dayAbbrevs = [7]string{
		"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
	}
)

// OrdinalSuffix returns the English ordinal suffix for n: "st", "nd", "rd" or "th".
// 11, 12 and 13 (and 111, 212, ...) always take "th".
func OrdinalSuffix(n int) string {
	if r := n % 100; r >= 11 && r <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Ordinal renders n followed by its suffix, without padding.
func Ordinal(n int) string {
	return strconv.Itoa(n) + OrdinalSuffix(n)
}
