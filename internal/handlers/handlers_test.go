package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravico/dinefinder/internal/availability"
	"github.com/ravico/dinefinder/internal/catalog"
	"github.com/ravico/dinefinder/internal/constants"
	"github.com/ravico/dinefinder/internal/hours"
)

var testClockLayouts = []string{"3:04 pm", "3 pm", "15:04"}

func testRestaurant(t *testing.T, name string, clauses ...string) catalog.Restaurant {
	t.Helper()
	schedule, skipped := hours.ParseSchedule(clauses, constants.WeekdayOrder, testClockLayouts)
	require.Zero(t, skipped, "test clause should parse cleanly")
	return catalog.Restaurant{Name: name, Schedule: schedule}
}

// newTestBaseHandler builds a BaseHandler over a small fixed catalog.
// Weekday Grill is open Mon-Fri daytime, Night Owl runs Friday night
// past midnight into Saturday.
func newTestBaseHandler(t *testing.T) *BaseHandler {
	t.Helper()

	restaurants := []catalog.Restaurant{
		testRestaurant(t, "Weekday Grill", "Mon-Fri 11 am - 9 pm"),
		testRestaurant(t, "Night Owl", "Fri 10 pm - 2 am"),
	}
	session := availability.NewSession(restaurants, []string{"2006-01-02"}, testClockLayouts)

	base, err := NewBaseHandler(session, "test")
	require.NoError(t, err)
	return base
}
