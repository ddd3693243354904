package models

import "time"

// Weekday is one of the six working days a route can schedule stops on.
// Sunday is intentionally absent: no stop is ever scheduled for it.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
)

// Weekdays lists all valid values in calendar order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseWeekday validates a raw string (case-sensitive, upper snake).
func ParseWeekday(raw string) (Weekday, bool) {
	for _, d := range Weekdays {
		if string(d) == raw {
			return d, true
		}
	}
	return "", false
}

// WeekdayOf maps a calendar date to its scheduling weekday.
// Returns false for Sundays.
func WeekdayOf(t time.Time) (Weekday, bool) {
	switch t.Weekday() {
	case time.Monday:
		return Monday, true
	case time.Tuesday:
		return Tuesday, true
	case time.Wednesday:
		return Wednesday, true
	case time.Thursday:
		return Thursday, true
	case time.Friday:
		return Friday, true
	case time.Saturday:
		return Saturday, true
	default:
		return "", false
	}
}
