// Package availability answers which restaurants are open at a given date
// and time.
package availability

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/ravico/dinefinder/internal/catalog"
	"github.com/ravico/dinefinder/internal/constants"
	"github.com/ravico/dinefinder/internal/hours"
	"github.com/ravico/dinefinder/internal/logging"
	"github.com/ravico/dinefinder/internal/metrics"
)

// InvalidInputError reports a date or time value that matches none of the
// accepted layouts. It is recoverable: the caller marks the field and asks
// for corrected input.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Field, e.Value)
}

// Session holds the parsed restaurant catalog for the lifetime of the
// process. Queries are pure reads; the catalog is only replaced wholesale
// on reload, behind an atomic pointer, so no locking is needed.
type Session struct {
	restaurants atomic.Pointer[[]catalog.Restaurant]
	dateLayouts []string
	timeLayouts []string
	logger      zerolog.Logger
}

// NewSession creates a session over an already loaded catalog.
func NewSession(restaurants []catalog.Restaurant, dateLayouts, timeLayouts []string) *Session {
	s := &Session{
		dateLayouts: dateLayouts,
		timeLayouts: timeLayouts,
		logger:      logging.GetLogger("availability"),
	}
	s.restaurants.Store(&restaurants)
	return s
}

// Swap installs a freshly loaded catalog. In-flight queries keep reading
// the list they started with.
func (s *Session) Swap(restaurants []catalog.Restaurant) {
	s.restaurants.Store(&restaurants)
	s.logger.Info().Int("restaurants", len(restaurants)).Msg("Catalog swapped")
}

// Size returns the number of restaurants in the current catalog.
func (s *Session) Size() int {
	return len(*s.restaurants.Load())
}

// ValidateDate checks a raw date value against the accepted layouts.
func (s *Session) ValidateDate(value string) error {
	_, err := s.parseDate(value)
	return err
}

// ValidateTime checks a raw time value against the accepted layouts.
func (s *Session) ValidateTime(value string) error {
	_, err := s.parseTime(value)
	return err
}

// FindOpen returns the restaurants open at the given date and time, in
// catalog order. No matches yields an empty slice, not an error; an
// unparseable value yields an *InvalidInputError. Input validation
// normally happens upstream, but the check is repeated here so the
// session never trusts raw text.
func (s *Session) FindOpen(dateValue, timeValue string) ([]catalog.Restaurant, error) {
	date, err := s.parseDate(dateValue)
	if err != nil {
		metrics.IncQuery(metrics.OutcomeInvalidInput)
		return nil, err
	}
	instant, err := s.parseTime(timeValue)
	if err != nil {
		metrics.IncQuery(metrics.OutcomeInvalidInput)
		return nil, err
	}

	weekday := constants.WeekdayOf(date)

	open := make([]catalog.Restaurant, 0)
	for _, restaurant := range *s.restaurants.Load() {
		if restaurant.Schedule.IsOpen(weekday, instant) {
			open = append(open, restaurant)
		}
	}

	metrics.IncQuery(metrics.OutcomeOK)
	metrics.ObserveOpenResults(len(open))
	s.logger.Debug().
		Str("weekday", weekday).
		Str("date", dateValue).
		Str("time", timeValue).
		Int("open", len(open)).
		Msg("Query answered")

	return open, nil
}

func (s *Session) parseDate(value string) (time.Time, error) {
	for _, layout := range s.dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, &InvalidInputError{Field: "date", Value: value}
}

func (s *Session) parseTime(value string) (time.Time, error) {
	instant, err := hours.ParseClock(value, s.timeLayouts)
	if err != nil {
		return time.Time{}, &InvalidInputError{Field: "time", Value: value}
	}
	return instant, nil
}
