package service

import (
	"errors"
	"fmt"
	"time"

	"work-hours-bot/internal/domain"
	"work-hours-bot/internal/model"
	"work-hours-bot/pkg/clock"
)

type ScheduleService struct {
	Repo domain.ScheduleRepo
}

func NewScheduleService(repo domain.ScheduleRepo) *ScheduleService {
	return &ScheduleService{Repo: repo}
}

// Week returns the weekly default schedule, seeding an all "00:00 - 00:00"
// template on first use.
func (s *ScheduleService) Week() (model.WeeklySchedule, error) {
	ws, err := s.Repo.Get()
	if errors.Is(err, domain.ErrNotFound) {
		ws = model.WeeklySchedule{}
		if err := s.Repo.Replace(ws); err != nil {
			return model.WeeklySchedule{}, err
		}
		return ws, nil
	}
	return ws, err
}

// SetDay validates and stores new default times for one weekday.
func (s *ScheduleService) SetDay(day time.Weekday, startStr, endStr string) error {
	start, err := clock.Parse(startStr)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	end, err := clock.Parse(endStr)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	ws, err := s.Week()
	if err != nil {
		return err
	}
	ws.Days[day] = model.DayTimes{Start: start, End: end}
	return s.Repo.Replace(ws)
}

// TimesFor returns the scheduled default times for a weekday, used as the
// holiday fallback when logging a shift.
func (s *ScheduleService) TimesFor(day time.Weekday) (model.DayTimes, error) {
	ws, err := s.Week()
	if err != nil {
		return model.DayTimes{}, err
	}
	return ws.Days[day], nil
}
