package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalWeekday(t *testing.T) {
	tests := []struct {
		fragment string
		want     string
		ok       bool
	}{
		{"Sun", "Sun", true},
		{"Sunday", "Sun", true},
		{"Mon", "Mon", true},
		{"Tues", "Tue", true},
		{"Thurs", "Thu", true},
		{"Sat", "Sat", true},
		{"sun", "", false},
		{"am", "", false},
		{"Fr", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := CanonicalWeekday(tt.fragment)
		assert.Equal(t, tt.ok, ok, "fragment %q", tt.fragment)
		assert.Equal(t, tt.want, got, "fragment %q", tt.fragment)
	}
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, WeekdayIndex("Sun"))
	assert.Equal(t, 5, WeekdayIndex("Friday"))
	assert.Equal(t, -1, WeekdayIndex("pm"))
}

func TestPreviousWeekday(t *testing.T) {
	assert.Equal(t, "Sat", PreviousWeekday("Sun"))
	assert.Equal(t, "Fri", PreviousWeekday("Sat"))
	assert.Equal(t, "Wed", PreviousWeekday("Thu"))
	assert.Equal(t, "", PreviousWeekday("nope"))
}

func TestWeekdayOf(t *testing.T) {
	// 2023-01-04 is a Wednesday
	assert.Equal(t, "Wed", WeekdayOf(time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC)))
}
