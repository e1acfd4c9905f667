package service

import (
	"errors"
	"math"
	"testing"
	"time"

	"work-hours-bot/internal/domain"
)

func setupWorkTimeService() (*WorkTimeServiceImpl, *mockWorkTimeRepo) {
	repo := newMockWorkTimeRepo()
	rates := NewPayRateService(&mockPayRateStore{})
	return NewWorkTimeService(repo, rates), repo
}

func TestComputeNetHours_BreakTable(t *testing.T) {
	svc, _ := setupWorkTimeService()
	cases := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "17:10", 7.25}, // 8h10m raw, 45m break
		{"09:00", "15:10", 5.40}, // 6h10m raw, 30m break
		{"09:00", "13:10", 3.55}, // 4h10m raw, 15m break
		{"09:00", "10:00", 1.00}, // below smallest threshold
		{"09:00", "09:00", 0.00},
	}
	for _, c := range cases {
		got, err := svc.ComputeNetHours(c.start, c.end)
		if err != nil {
			t.Fatalf("ComputeNetHours(%s, %s): %v", c.start, c.end, err)
		}
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ComputeNetHours(%s, %s) = %v, want %v", c.start, c.end, got, c.want)
		}
	}
}

func TestComputeNetHours_EndBeforeStart(t *testing.T) {
	svc, _ := setupWorkTimeService()
	_, err := svc.ComputeNetHours("17:00", "09:00")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestComputeNetHours_MalformedTimes(t *testing.T) {
	svc, _ := setupWorkTimeService()
	for _, bad := range [][2]string{{"9:00", "17:00"}, {"09:00", "25:00"}, {"", "17:00"}} {
		if _, err := svc.ComputeNetHours(bad[0], bad[1]); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("ComputeNetHours(%q, %q): want validation error, got %v", bad[0], bad[1], err)
		}
	}
}

func TestLogShift_StoresComputedRecord(t *testing.T) {
	svc, repo := setupWorkTimeService()
	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	wt, err := svc.LogShift(date, "09:00", "17:10", false)
	if err != nil {
		t.Fatalf("LogShift: %v", err)
	}
	if wt.HoursWorked != 7.25 {
		t.Errorf("HoursWorked = %v, want 7.25", wt.HoursWorked)
	}
	// 7.25 * default 11.11, rounded to 2 places
	if wt.Pay != 80.55 {
		t.Errorf("Pay = %v, want 80.55", wt.Pay)
	}
	stored, err := repo.FindByDate(date)
	if err != nil {
		t.Fatalf("stored record missing: %v", err)
	}
	if stored.Start.String() != "09:00" || stored.End.String() != "17:10" {
		t.Errorf("stored times %s - %s", stored.Start, stored.End)
	}
}

func TestLogShift_DuplicateDateConflicts(t *testing.T) {
	svc, _ := setupWorkTimeService()
	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	if _, err := svc.LogShift(date, "09:00", "17:10", false); err != nil {
		t.Fatalf("first LogShift: %v", err)
	}
	_, err := svc.LogShift(date, "10:00", "18:00", false)
	if !errors.Is(err, domain.ErrDuplicateDate) {
		t.Fatalf("want ErrDuplicateDate, got %v", err)
	}
}

func TestLogShift_OverwriteReplaces(t *testing.T) {
	svc, repo := setupWorkTimeService()
	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	if _, err := svc.LogShift(date, "09:00", "17:10", false); err != nil {
		t.Fatalf("first LogShift: %v", err)
	}
	if _, err := svc.LogShift(date, "10:00", "18:00", true); err != nil {
		t.Fatalf("overwrite LogShift: %v", err)
	}
	stored, _ := repo.FindByDate(date)
	if stored.Start.String() != "10:00" {
		t.Errorf("overwrite kept old start %s", stored.Start)
	}
}

func TestLogShift_OverwriteOnEmptyDateStillInserts(t *testing.T) {
	svc, repo := setupWorkTimeService()
	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	if _, err := svc.LogShift(date, "09:00", "17:10", true); err != nil {
		t.Fatalf("LogShift with overwrite on empty date: %v", err)
	}
	if _, err := repo.FindByDate(date); err != nil {
		t.Fatalf("record not stored: %v", err)
	}
}

func TestLogShift_ValidationNeverReachesStorage(t *testing.T) {
	svc, repo := setupWorkTimeService()
	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	if _, err := svc.LogShift(date, "17:00", "09:00", false); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Error("validation failure must not write to storage")
	}
}

func TestHasRecord(t *testing.T) {
	svc, _ := setupWorkTimeService()
	date := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	ok, err := svc.HasRecord(date)
	if err != nil || ok {
		t.Fatalf("HasRecord on empty store = %v, %v", ok, err)
	}
	if _, err := svc.LogShift(date, "09:00", "17:10", false); err != nil {
		t.Fatalf("LogShift: %v", err)
	}
	ok, err = svc.HasRecord(date)
	if err != nil || !ok {
		t.Fatalf("HasRecord after insert = %v, %v", ok, err)
	}
}

func TestDeleteShift_AbsentDate(t *testing.T) {
	svc, _ := setupWorkTimeService()
	err := svc.DeleteShift(time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestLogShift_StorageFailurePropagates(t *testing.T) {
	svc, repo := setupWorkTimeService()
	repo.failErr = errors.New("disk on fire")

	_, err := svc.LogShift(time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), "09:00", "17:10", false)
	if err == nil || errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want storage error, got %v", err)
	}
}
