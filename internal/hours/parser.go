package hours

import (
	"errors"
	"strings"
	"time"

	"github.com/ravico/dinefinder/internal/constants"
)

var (
	errNoTimeRange  = errors.New("clause has no parseable time range")
	errNoDayPattern = errors.New("clause matches no day pattern")
)

// ParseSchedule converts raw weekly hour clauses into a Schedule. order is
// the canonical week used to resolve day ranges and layouts the accepted
// clock formats. Later clauses overwrite earlier assignments for the same
// weekday. Clauses matching no day pattern or carrying no parseable time
// range produce no entry; their count is returned so callers can surface it.
func ParseSchedule(clauses []string, order []string, layouts []string) (Schedule, int) {
	schedule := make(Schedule, len(order))
	skipped := 0

	for _, clause := range clauses {
		days, window, err := parseClause(clause, order, layouts)
		if err != nil {
			skipped++
			continue
		}
		for _, day := range days {
			schedule[day] = window
		}
	}

	return schedule, skipped
}

// parseClause breaks one clause into the weekdays it covers and their
// window. The clause grammar has three sub-patterns: a day range
// ("Mon-Fri", first occurrence wins), a lone day ("Sat"), and a time range
// (two clock times around a standalone "-"). A lone day only counts when
// its token is not part of the range text, so "Mon-Thu, Sun" covers both
// the range and Sunday.
func parseClause(clause string, order []string, layouts []string) ([]string, DaySchedule, error) {
	fields := strings.Fields(clause)

	window, err := extractWindow(fields, layouts)
	if err != nil {
		return nil, DaySchedule{}, err
	}

	rangeStart, rangeEnd := -1, -1
	lone := ""
	for _, field := range fields {
		field = strings.Trim(field, ",")
		if idx := strings.IndexByte(field, '-'); idx > 0 && rangeStart < 0 {
			start := constants.WeekdayIndex(field[:idx])
			end := constants.WeekdayIndex(field[idx+1:])
			if start >= 0 && end >= 0 {
				rangeStart, rangeEnd = start, end
				continue
			}
		}
		if lone == "" && !strings.Contains(field, "-") {
			if day, ok := constants.CanonicalWeekday(field); ok {
				lone = day
			}
		}
	}

	var days []string
	if rangeStart >= 0 {
		days = expandRange(order, rangeStart, rangeEnd)
	}
	if lone != "" {
		days = append(days, lone)
	}
	if len(days) == 0 {
		return nil, DaySchedule{}, errNoDayPattern
	}
	return days, window, nil
}

// extractWindow locates the standalone "-" separating the open and close
// clock times and parses both sides. A close time that is not strictly
// after the open time rolls over to the next calendar day.
func extractWindow(fields []string, layouts []string) (DaySchedule, error) {
	dash := -1
	for i, field := range fields {
		if field == "-" {
			dash = i
			break
		}
	}
	if dash < 0 {
		return DaySchedule{}, errNoTimeRange
	}

	open, err := parseClockTokens(fields[:dash], layouts, true)
	if err != nil {
		return DaySchedule{}, errNoTimeRange
	}
	closing, err := parseClockTokens(fields[dash+1:], layouts, false)
	if err != nil {
		return DaySchedule{}, errNoTimeRange
	}

	if !closing.After(open) {
		closing = closing.AddDate(0, 0, 1)
	}

	return DaySchedule{Open: open, Close: closing}, nil
}

// parseClockTokens parses a clock time from the tokens adjacent to the
// range separator: the trailing tokens when fromEnd is set, the leading
// ones otherwise. A two token form ("9 pm") is tried before a single token
// form ("21:00").
func parseClockTokens(tokens []string, layouts []string, fromEnd bool) (t time.Time, err error) {
	if fromEnd {
		if n := len(tokens); n >= 2 {
			if t, err = ParseClock(tokens[n-2]+" "+tokens[n-1], layouts); err == nil {
				return t, nil
			}
		}
		if n := len(tokens); n >= 1 {
			return ParseClock(tokens[n-1], layouts)
		}
		return t, errNoTimeRange
	}

	if len(tokens) >= 2 {
		if t, err = ParseClock(tokens[0]+" "+tokens[1], layouts); err == nil {
			return t, nil
		}
	}
	if len(tokens) >= 1 {
		return ParseClock(tokens[0], layouts)
	}
	return t, errNoTimeRange
}

// expandRange resolves start/end indices in the weekday order into the
// covered days. A start past the end wraps around the week, so "Fri-Mon"
// covers Fri, Sat, Sun and Mon.
func expandRange(order []string, start, end int) []string {
	if start <= end {
		return append([]string(nil), order[start:end+1]...)
	}
	days := append([]string(nil), order[start:]...)
	return append(days, order[:end+1]...)
}
