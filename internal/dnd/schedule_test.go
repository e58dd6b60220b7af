package dnd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/urbanshade/notify-center/internal/model"
)

// 2025-09-16 is a Tuesday (weekday 2).
func tuesdayAt(hour, minute int) time.Time {
	return time.Date(2025, 9, 16, hour, minute, 0, 0, time.UTC)
}

func TestInScheduledWindow_SameDay(t *testing.T) {
	schedule := model.DndSchedule{
		Enabled:     true,
		StartHour:   9,
		StartMinute: 0,
		EndHour:     17,
		EndMinute:   0,
		Days:        []int{2},
	}

	assert.True(t, InScheduledWindow(schedule, tuesdayAt(12, 0)))
	assert.True(t, InScheduledWindow(schedule, tuesdayAt(9, 0)), "start is inclusive")
	assert.False(t, InScheduledWindow(schedule, tuesdayAt(8, 59)))
	assert.False(t, InScheduledWindow(schedule, tuesdayAt(17, 0)), "end is exclusive")
}

func TestInScheduledWindow_Overnight(t *testing.T) {
	schedule := model.DndSchedule{
		Enabled:     true,
		StartHour:   22,
		StartMinute: 0,
		EndHour:     8,
		EndMinute:   0,
		Days:        []int{2},
	}

	assert.True(t, InScheduledWindow(schedule, tuesdayAt(23, 30)))
	assert.True(t, InScheduledWindow(schedule, tuesdayAt(7, 59)))
	assert.False(t, InScheduledWindow(schedule, tuesdayAt(8, 0)))
	assert.False(t, InScheduledWindow(schedule, tuesdayAt(12, 0)))
}

func TestInScheduledWindow_DayFilter(t *testing.T) {
	schedule := model.DndSchedule{
		Enabled:     true,
		StartHour:   9,
		StartMinute: 0,
		EndHour:     17,
		EndMinute:   0,
		Days:        []int{2},
	}

	noon := tuesdayAt(12, 0)
	assert.True(t, InScheduledWindow(schedule, noon))

	// Excluding today flips the result at the same time of day.
	schedule.Days = []int{0, 1, 3, 4, 5, 6}
	assert.False(t, InScheduledWindow(schedule, noon))
}

func TestInScheduledWindow_Disabled(t *testing.T) {
	schedule := model.DndSchedule{
		Enabled:   false,
		StartHour: 0,
		EndHour:   23,
		EndMinute: 59,
		Days:      []int{0, 1, 2, 3, 4, 5, 6},
	}

	assert.False(t, InScheduledWindow(schedule, tuesdayAt(12, 0)))
}

func TestMinutesUntilEnd(t *testing.T) {
	schedule := model.DndSchedule{
		Enabled:   true,
		StartHour: 22,
		EndHour:   8,
		Days:      []int{2},
	}

	// 23:00 to 08:00 wraps past midnight.
	assert.Equal(t, 9*60, MinutesUntilEnd(schedule, tuesdayAt(23, 0)))
	// 07:30 to 08:00 is on the same day.
	assert.Equal(t, 30, MinutesUntilEnd(schedule, tuesdayAt(7, 30)))
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "9h 0m remaining", FormatRemaining(540))
	assert.Equal(t, "1h 30m remaining", FormatRemaining(90))
	assert.Equal(t, "45m remaining", FormatRemaining(45))
	assert.Equal(t, "0m remaining", FormatRemaining(0))
}
