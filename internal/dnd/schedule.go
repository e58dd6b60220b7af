// Package dnd implements the Do Not Disturb schedule evaluator: pure
// functions deciding whether a recurring weekly window is active at a given
// wall-clock time and how long it has left to run.
package dnd

import (
	"fmt"
	"time"

	"github.com/urbanshade/notify-center/internal/model"
)

// InScheduledWindow reports whether the schedule's recurring window covers
// the given time. The window start is inclusive and the end exclusive. A
// start later than the end means the window spans midnight.
//
// Out-of-range hour or minute values are not validated here; the API
// boundary constrains input before it is stored.
func InScheduledWindow(s model.DndSchedule, now time.Time) bool {
	if !s.Enabled {
		return false
	}

	if !containsDay(s.Days, int(now.Weekday())) {
		return false
	}

	current := minuteOfDay(now)
	start := s.StartHour*60 + s.StartMinute
	end := s.EndHour*60 + s.EndMinute

	// Overnight window, e.g. 22:00 to 08:00.
	if start > end {
		return current >= start || current < end
	}

	return current >= start && current < end
}

// MinutesUntilEnd returns how many minutes remain until the schedule's end
// time, wrapping past midnight when the end lies on the next day. The
// result is only meaningful while the window is active.
func MinutesUntilEnd(s model.DndSchedule, now time.Time) int {
	diff := s.EndHour*60 + s.EndMinute - minuteOfDay(now)
	if diff < 0 {
		diff += 24 * 60
	}
	return diff
}

// FormatRemaining renders a minute count as "Xh Ym remaining" or
// "Ym remaining" for display.
func FormatRemaining(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm remaining", hours, mins)
	}
	return fmt.Sprintf("%dm remaining", mins)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
