package availability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravico/dinefinder/internal/catalog"
	"github.com/ravico/dinefinder/internal/constants"
	"github.com/ravico/dinefinder/internal/hours"
)

var (
	testDateLayouts  = []string{"2006-01-02", "1/2/2006"}
	testTimeLayouts  = []string{"3:04 pm", "3 pm", "15:04"}
	testClockLayouts = []string{"3:04 pm", "3 pm", "15:04"}
)

func testRestaurant(t *testing.T, name string, clauses ...string) catalog.Restaurant {
	t.Helper()
	schedule, skipped := hours.ParseSchedule(clauses, constants.WeekdayOrder, testClockLayouts)
	require.Zero(t, skipped)
	return catalog.Restaurant{Name: name, Schedule: schedule}
}

func names(restaurants []catalog.Restaurant) []string {
	result := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		result = append(result, r.Name)
	}
	return result
}

func TestFindOpenWeekdayWindow(t *testing.T) {
	session := NewSession([]catalog.Restaurant{
		testRestaurant(t, "Weekday Diner", "Mon-Fri 11 am - 9 pm"),
	}, testDateLayouts, testTimeLayouts)

	// 2023-01-04 is a Wednesday
	open, err := session.FindOpen("2023-01-04", "3 pm")
	require.NoError(t, err)
	assert.Equal(t, []string{"Weekday Diner"}, names(open))
}

func TestFindOpenClosedDay(t *testing.T) {
	session := NewSession([]catalog.Restaurant{
		testRestaurant(t, "Sunday Only", "Sun 8 am - 10 pm"),
	}, testDateLayouts, testTimeLayouts)

	// 2023-01-02 is a Monday; closed at any time of day
	for _, clock := range []string{"12:01 am", "9 am", "3 pm", "11:59 pm"} {
		open, err := session.FindOpen("2023-01-02", clock)
		require.NoError(t, err)
		assert.Empty(t, open, "time %s", clock)
	}
}

func TestFindOpenOvernightRollover(t *testing.T) {
	session := NewSession([]catalog.Restaurant{
		testRestaurant(t, "Night Owl", "Fri 10 pm - 2 am"),
	}, testDateLayouts, testTimeLayouts)

	// 2023-01-07 is a Saturday; 1 am falls inside Friday's overnight window
	open, err := session.FindOpen("2023-01-07", "1 am")
	require.NoError(t, err)
	assert.Equal(t, []string{"Night Owl"}, names(open))

	// but 3 am is past the close
	open, err = session.FindOpen("2023-01-07", "3 am")
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestFindOpenPreservesCatalogOrder(t *testing.T) {
	session := NewSession([]catalog.Restaurant{
		testRestaurant(t, "Charlie", "Mon-Sun 11 am - 9 pm"),
		testRestaurant(t, "Alpha", "Mon-Sun 11 am - 9 pm"),
		testRestaurant(t, "Bravo", "Sun 8 am - 10 am"),
		testRestaurant(t, "Echo", "Mon-Sun 11 am - 9 pm"),
	}, testDateLayouts, testTimeLayouts)

	open, err := session.FindOpen("2023-01-04", "noon")
	require.Error(t, err)

	open, err = session.FindOpen("2023-01-04", "12:30 pm")
	require.NoError(t, err)
	// filtered only, never reordered
	assert.Equal(t, []string{"Charlie", "Alpha", "Echo"}, names(open))
}

func TestFindOpenEmptyCatalog(t *testing.T) {
	session := NewSession(nil, testDateLayouts, testTimeLayouts)

	open, err := session.FindOpen("2023-01-04", "3 pm")
	require.NoError(t, err)
	assert.NotNil(t, open)
	assert.Empty(t, open)
}

func TestFindOpenInvalidInput(t *testing.T) {
	session := NewSession(nil, testDateLayouts, testTimeLayouts)

	_, err := session.FindOpen("not-a-date", "3 pm")
	var invalid *InvalidInputError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "date", invalid.Field)

	_, err = session.FindOpen("2023-01-04", "quarter past")
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "time", invalid.Field)
}

func TestFindOpenAlternateDateLayout(t *testing.T) {
	session := NewSession([]catalog.Restaurant{
		testRestaurant(t, "Weekday Diner", "Mon-Fri 11 am - 9 pm"),
	}, testDateLayouts, testTimeLayouts)

	open, err := session.FindOpen("1/4/2023", "3 pm")
	require.NoError(t, err)
	assert.Len(t, open, 1)
}

func TestValidateFields(t *testing.T) {
	session := NewSession(nil, testDateLayouts, testTimeLayouts)

	assert.NoError(t, session.ValidateDate("2023-01-04"))
	assert.Error(t, session.ValidateDate("tomorrow"))
	assert.NoError(t, session.ValidateTime("9:30 pm"))
	assert.Error(t, session.ValidateTime(""))
}

func TestSwapReplacesCatalog(t *testing.T) {
	session := NewSession([]catalog.Restaurant{
		testRestaurant(t, "First", "Mon-Sun 11 am - 9 pm"),
	}, testDateLayouts, testTimeLayouts)
	assert.Equal(t, 1, session.Size())

	session.Swap([]catalog.Restaurant{
		testRestaurant(t, "Second", "Mon-Sun 11 am - 9 pm"),
		testRestaurant(t, "Third", "Mon-Sun 11 am - 9 pm"),
	})
	assert.Equal(t, 2, session.Size())

	open, err := session.FindOpen("2023-01-04", "3 pm")
	require.NoError(t, err)
	assert.Equal(t, []string{"Second", "Third"}, names(open))
}
