package service

import (
	"time"

	"work-hours-bot/internal/domain"
)

// WeekStart is the weekday the work week rolls over on.
const WeekStart = time.Saturday

// DayLine is one rendered row of the worked-week display.
type DayLine struct {
	Day   string // 3-letter weekday
	Start string // HH:MM
	End   string // HH:MM
}

type Totals struct {
	Hours float64
	Pay   float64
}

type WeekService struct {
	Repo domain.WorkTimeRepo
}

func NewWeekService(repo domain.WorkTimeRepo) *WeekService {
	return &WeekService{Repo: repo}
}

// Window returns the current work week: from the most recent WeekStart
// (possibly today) through today, always 1-7 days.
func (s *WeekService) Window(today time.Time) (from, to time.Time) {
	to = dateOnly(today)
	from = to
	for i := 0; i < 7; i++ {
		if from.Weekday() == WeekStart {
			break
		}
		from = from.AddDate(0, 0, -1)
	}
	return from, to
}

// WorkedWeek renders the logged shifts of the current week in date order
// with running hour and pay totals. Days with no record are skipped.
func (s *WeekService) WorkedWeek(today time.Time) ([]DayLine, Totals, error) {
	from, to := s.Window(today)
	records, err := s.Repo.ListRange(from, to)
	if err != nil {
		return nil, Totals{}, err
	}

	var lines []DayLine
	var totals Totals
	for _, wt := range records {
		lines = append(lines, DayLine{
			Day:   wt.Date.Format("Mon"),
			Start: wt.Start.String(),
			End:   wt.End.String(),
		})
		totals.Hours += wt.HoursWorked
		totals.Pay += wt.Pay
	}
	return lines, totals, nil
}
