package domain

import (
	"time"

	"work-hours-bot/internal/model"
)

type WorkTimeRepo interface {
	FindByDate(date time.Time) (model.WorkTime, error)
	Insert(wt model.WorkTime) error
	DeleteByDate(date time.Time) error
	ListRange(from, to time.Time) ([]model.WorkTime, error)
}
