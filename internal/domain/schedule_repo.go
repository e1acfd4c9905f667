package domain

import "work-hours-bot/internal/model"

type ScheduleRepo interface {
	Get() (model.WeeklySchedule, error)
	Replace(ws model.WeeklySchedule) error
}
