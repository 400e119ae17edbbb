package usecase

import (
	"time"
)

// truncateToDay drops the time-of-day component in local time. Date-window
// checks compare whole days.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// withinWindow reports start <= today <= end on whole days.
func withinWindow(today, start, end time.Time) bool {
	today = truncateToDay(today)
	start = truncateToDay(start)
	end = truncateToDay(end)
	return !today.Before(start) && !today.After(end)
}
