// Package hours turns free-text weekly hour clauses like
// "Mon-Fri 11 am - 9 pm" into per weekday open/close windows and answers
// whether a point in time falls inside one.
package hours

import (
	"fmt"
	"strings"
	"time"

	"github.com/ravico/dinefinder/internal/constants"
)

// anchor is the arbitrary common date every clock time is attached to so
// that windows can be compared and a close time pushed past midnight.
var anchor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// DaySchedule is the open/close window for a single weekday. Close is
// strictly after Open; for windows that cross midnight Close lies on the
// day after the anchor date.
type DaySchedule struct {
	Open  time.Time
	Close time.Time
}

// Contains reports whether t is strictly between the open and close
// instants. Both boundaries are exclusive.
func (w DaySchedule) Contains(t time.Time) bool {
	return t.After(w.Open) && t.Before(w.Close)
}

// Overnight reports whether the window closes on the day after it opens.
func (w DaySchedule) Overnight() bool {
	return !w.Close.Before(anchor.AddDate(0, 0, 1))
}

// Schedule maps canonical weekday abbreviations to their windows. A missing
// key means closed on that day.
type Schedule map[string]DaySchedule

// IsOpen reports whether the schedule is open on the given weekday at the
// given anchored clock time. A window that started on the previous day and
// runs past midnight also counts, so "Fri 10 pm - 2 am" answers true for
// Saturday 1 am.
func (s Schedule) IsOpen(weekday string, t time.Time) bool {
	if win, ok := s[weekday]; ok && win.Contains(t) {
		return true
	}
	if prev := constants.PreviousWeekday(weekday); prev != "" {
		if win, ok := s[prev]; ok && win.Contains(t.AddDate(0, 0, 1)) {
			return true
		}
	}
	return false
}

// ParseClock parses a clock time such as "9:30 pm" against the given
// layouts, in order, and anchors the result to the common reference date.
func ParseClock(text string, layouts []string) (time.Time, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, layout := range layouts {
		if t, err := time.Parse(layout, text); err == nil {
			offset := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
			return anchor.Add(offset), nil
		}
	}
	return time.Time{}, fmt.Errorf("clock time %q matches no accepted layout", text)
}
