package hours

import (
	"testing"

	"github.com/ravico/dinefinder/internal/constants"
	"github.com/stretchr/testify/assert"
)

func TestIsOpenBoundariesAreExclusive(t *testing.T) {
	schedule := parseOne(t, "Mon-Fri 11 am - 9 pm")

	open := clockOf(t, "11 am")
	closing := clockOf(t, "9 pm")

	assert.False(t, schedule.IsOpen("Wed", open), "exactly at open is closed")
	assert.False(t, schedule.IsOpen("Wed", closing), "exactly at close is closed")
	assert.True(t, schedule.IsOpen("Wed", open.Add(1)), "just after open is open")
	assert.True(t, schedule.IsOpen("Wed", closing.Add(-1)), "just before close is open")
	assert.True(t, schedule.IsOpen("Wed", clockOf(t, "3 pm")))
}

func TestIsOpenAbsentDayIsClosed(t *testing.T) {
	schedule := parseOne(t, "Sun 8 am - 10 pm")

	assert.True(t, schedule.IsOpen("Sun", clockOf(t, "9 am")))
	assert.False(t, schedule.IsOpen("Mon", clockOf(t, "9 am")))
	assert.False(t, schedule.IsOpen("Mon", clockOf(t, "1 am")))
}

func TestIsOpenEmptySchedule(t *testing.T) {
	assert.False(t, Schedule{}.IsOpen("Wed", clockOf(t, "3 pm")))
}

func TestIsOpenOvernightSpillover(t *testing.T) {
	schedule := parseOne(t, "Fri 10 pm - 2 am")

	// the window belongs to Friday
	assert.True(t, schedule.IsOpen("Fri", clockOf(t, "11 pm")))
	assert.False(t, schedule.IsOpen("Fri", clockOf(t, "9 pm")))

	// the early morning tail spills into Saturday
	assert.True(t, schedule.IsOpen("Sat", clockOf(t, "1 am")))
	assert.False(t, schedule.IsOpen("Sat", clockOf(t, "2 am")), "close boundary stays exclusive across midnight")
	assert.False(t, schedule.IsOpen("Sat", clockOf(t, "3 am")))
	assert.False(t, schedule.IsOpen("Sat", clockOf(t, "11 pm")))

	// no other day inherits the window
	assert.False(t, schedule.IsOpen("Sun", clockOf(t, "1 am")))
	assert.False(t, schedule.IsOpen("Thu", clockOf(t, "11 pm")))
}

func TestIsOpenWeekWrappingSpillover(t *testing.T) {
	// Saturday night hours spilling into Sunday crosses the week boundary
	schedule := parseOne(t, "Sat 10 pm - 3 am")

	assert.True(t, schedule.IsOpen("Sun", clockOf(t, "1 am")))
	assert.False(t, schedule.IsOpen("Sun", clockOf(t, "4 am")))
}

func TestIsOpenUsesCanonicalOrder(t *testing.T) {
	schedule, skipped := ParseSchedule(
		[]string{"Mon-Sun 11 am - 10 pm"},
		constants.WeekdayOrder, testLayouts)

	assert.Zero(t, skipped)
	// Mon-Sun wraps: Mon..Sat plus Sun
	assert.Len(t, schedule, 7)
	for _, day := range constants.WeekdayOrder {
		assert.True(t, schedule.IsOpen(day, clockOf(t, "12:01 pm")), "day %s", day)
	}
}
