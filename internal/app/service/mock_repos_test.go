package service

import (
	"time"

	"work-hours-bot/internal/domain"
	"work-hours-bot/internal/model"
)

// In-memory doubles for the repository interfaces.

type mockWorkTimeRepo struct {
	records map[string]model.WorkTime // "2006-01-02" -> record
	failErr error                     // returned by every call when set
}

func newMockWorkTimeRepo() *mockWorkTimeRepo {
	return &mockWorkTimeRepo{records: make(map[string]model.WorkTime)}
}

func key(date time.Time) string {
	return date.Format("2006-01-02")
}

func (m *mockWorkTimeRepo) FindByDate(date time.Time) (model.WorkTime, error) {
	if m.failErr != nil {
		return model.WorkTime{}, m.failErr
	}
	wt, ok := m.records[key(date)]
	if !ok {
		return model.WorkTime{}, domain.ErrNotFound
	}
	return wt, nil
}

func (m *mockWorkTimeRepo) Insert(wt model.WorkTime) error {
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.records[key(wt.Date)]; ok {
		return domain.ErrDuplicateDate
	}
	m.records[key(wt.Date)] = wt
	return nil
}

func (m *mockWorkTimeRepo) DeleteByDate(date time.Time) error {
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.records[key(date)]; !ok {
		return domain.ErrNotFound
	}
	delete(m.records, key(date))
	return nil
}

func (m *mockWorkTimeRepo) ListRange(from, to time.Time) ([]model.WorkTime, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	var list []model.WorkTime
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if wt, ok := m.records[key(d)]; ok {
			list = append(list, wt)
		}
	}
	return list, nil
}

type mockScheduleRepo struct {
	ws    *model.WeeklySchedule
	saves int
}

func (m *mockScheduleRepo) Get() (model.WeeklySchedule, error) {
	if m.ws == nil {
		return model.WeeklySchedule{}, domain.ErrNotFound
	}
	return *m.ws, nil
}

func (m *mockScheduleRepo) Replace(ws model.WeeklySchedule) error {
	m.saves++
	m.ws = &ws
	return nil
}

type mockPayRateStore struct {
	value string
	wrote []string
}

func (m *mockPayRateStore) Read() (string, error) {
	return m.value, nil
}

func (m *mockPayRateStore) Write(value string) error {
	m.wrote = append(m.wrote, value)
	m.value = value
	return nil
}
