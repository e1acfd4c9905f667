package domain

import (
	"time"

	"work-hours-bot/internal/model"
)

type WorkTimeService interface {
	LogShift(date time.Time, startStr, endStr string, overwrite bool) (model.WorkTime, error)
	HasRecord(date time.Time) (bool, error)
	DeleteShift(date time.Time) error
}
