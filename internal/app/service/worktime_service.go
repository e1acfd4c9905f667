package service

import (
	"errors"
	"fmt"
	"time"

	"work-hours-bot/internal/domain"
	"work-hours-bot/internal/model"
	"work-hours-bot/pkg/breaks"
	"work-hours-bot/pkg/clock"
)

type WorkTimeServiceImpl struct {
	Repo  domain.WorkTimeRepo
	Rates *PayRateService
}

func NewWorkTimeService(repo domain.WorkTimeRepo, rates *PayRateService) *WorkTimeServiceImpl {
	return &WorkTimeServiceImpl{Repo: repo, Rates: rates}
}

// ComputeNetHours validates the raw time strings, subtracts the applicable
// break and returns the net duration in decimal form (7h25m -> 7.25).
func (s *WorkTimeServiceImpl) ComputeNetHours(startStr, endStr string) (float64, error) {
	start, end, err := parseShiftTimes(startStr, endStr)
	if err != nil {
		return 0, err
	}
	raw := end.Sub(start)
	return clock.DecimalHours(breaks.Apply(raw)), nil
}

// LogShift computes hours and pay for the given times at the current rate
// and stores the record. With overwrite set, any existing record for the
// date is deleted first; without it a duplicate date is a conflict.
func (s *WorkTimeServiceImpl) LogShift(date time.Time, startStr, endStr string, overwrite bool) (model.WorkTime, error) {
	start, end, err := parseShiftTimes(startStr, endStr)
	if err != nil {
		return model.WorkTime{}, err
	}
	hours := clock.DecimalHours(breaks.Apply(end.Sub(start)))

	rate, err := s.Rates.Rate()
	if err != nil {
		return model.WorkTime{}, err
	}
	pay, err := s.Rates.ComputePay(rate, hours)
	if err != nil {
		return model.WorkTime{}, err
	}

	if overwrite {
		if err := s.Repo.DeleteByDate(date); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return model.WorkTime{}, err
		}
	}

	wt := model.WorkTime{
		Date:        dateOnly(date),
		Start:       start,
		End:         end,
		HoursWorked: hours,
		Pay:         pay,
	}
	if err := s.Repo.Insert(wt); err != nil {
		return model.WorkTime{}, err
	}
	return wt, nil
}

// HasRecord reports whether a shift is already logged for the date.
func (s *WorkTimeServiceImpl) HasRecord(date time.Time) (bool, error) {
	_, err := s.Repo.FindByDate(date)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *WorkTimeServiceImpl) DeleteShift(date time.Time) error {
	return s.Repo.DeleteByDate(date)
}

func parseShiftTimes(startStr, endStr string) (start, end clock.TimeOfDay, err error) {
	if start, err = clock.Parse(startStr); err != nil {
		return start, end, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if end, err = clock.Parse(endStr); err != nil {
		return start, end, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if end.Sub(start) < 0 {
		return start, end, fmt.Errorf("%w: end time %s is before start time %s", domain.ErrValidation, end, start)
	}
	return start, end, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
