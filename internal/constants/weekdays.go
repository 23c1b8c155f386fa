// Package constants provides shared constants for the dinefinder application
package constants

import "time"

// WeekdayOrder is the canonical week used as schedule keys, Sunday first.
// The three letter abbreviations match time.Time.Format("Mon").
var WeekdayOrder = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// CanonicalWeekday resolves a weekday fragment from an hours clause ("Sun",
// "Tues", "Thursday") to its canonical abbreviation. Fragments are matched on
// their first three letters, which is how the source data abbreviates days.
func CanonicalWeekday(fragment string) (string, bool) {
	if len(fragment) < 3 {
		return "", false
	}
	head := fragment[:3]
	for _, day := range WeekdayOrder {
		if day == head {
			return day, true
		}
	}
	return "", false
}

// WeekdayIndex returns the position of a weekday fragment within
// WeekdayOrder, or -1 if the fragment is not a weekday.
func WeekdayIndex(fragment string) int {
	day, ok := CanonicalWeekday(fragment)
	if !ok {
		return -1
	}
	for i, d := range WeekdayOrder {
		if d == day {
			return i
		}
	}
	return -1
}

// IsWeekday checks if a given token is a recognizable weekday fragment
func IsWeekday(fragment string) bool {
	_, ok := CanonicalWeekday(fragment)
	return ok
}

// PreviousWeekday returns the abbreviation of the day before the given one.
func PreviousWeekday(day string) string {
	idx := WeekdayIndex(day)
	if idx < 0 {
		return ""
	}
	return WeekdayOrder[(idx+len(WeekdayOrder)-1)%len(WeekdayOrder)]
}

// WeekdayOf returns the canonical abbreviation for a date.
func WeekdayOf(t time.Time) string {
	return t.Format("Mon")
}
