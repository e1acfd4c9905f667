package model

import (
	"time"

	"work-hours-bot/pkg/clock"
)

// WorkTime is one logged shift: a calendar date with start/end times and the
// derived decimal hours and pay that were computed when it was saved.
type WorkTime struct {
	Date        time.Time
	Start       clock.TimeOfDay
	End         clock.TimeOfDay
	HoursWorked float64
	Pay         float64
}

// DayTimes is the scheduled default start/end pair for one weekday.
type DayTimes struct {
	Start clock.TimeOfDay
	End   clock.TimeOfDay
}

// WeeklySchedule holds the default shift times for every weekday,
// indexed by time.Weekday (Sunday = 0).
type WeeklySchedule struct {
	Days [7]DayTimes
}
