package service

import (
	"errors"
	"testing"

	"work-hours-bot/internal/domain"
)

func TestRate_DefaultWhenUnset(t *testing.T) {
	svc := NewPayRateService(&mockPayRateStore{})
	rate, err := svc.Rate()
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if rate != DefaultPayRate {
		t.Errorf("Rate = %q, want default %q", rate, DefaultPayRate)
	}
}

func TestRate_StoredValueWins(t *testing.T) {
	svc := NewPayRateService(&mockPayRateStore{value: "12.50"})
	rate, err := svc.Rate()
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if rate != "12.50" {
		t.Errorf("Rate = %q, want 12.50", rate)
	}
}

func TestSetRate(t *testing.T) {
	store := &mockPayRateStore{}
	svc := NewPayRateService(store)

	if err := svc.SetRate("13.75"); err != nil {
		t.Fatalf("SetRate(13.75): %v", err)
	}
	if store.value != "13.75" {
		t.Errorf("stored %q, want 13.75", store.value)
	}

	for _, bad := range []string{"abc", "", "-5", "0", "12,50"} {
		if err := svc.SetRate(bad); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("SetRate(%q): want validation error, got %v", bad, err)
		}
	}
	if len(store.wrote) != 1 {
		t.Errorf("rejected rates must not be written, writes = %v", store.wrote)
	}
}

func TestComputePay(t *testing.T) {
	svc := NewPayRateService(&mockPayRateStore{})
	cases := []struct {
		rate  string
		hours float64
		want  float64
	}{
		{"11.11", 7.25, 80.55},
		{"11.11", 1.00, 11.11},
		{"11.11", 0, 0},
		{"10.00", 5.40, 54.00},
	}
	for _, c := range cases {
		got, err := svc.ComputePay(c.rate, c.hours)
		if err != nil {
			t.Fatalf("ComputePay(%s, %v): %v", c.rate, c.hours, err)
		}
		if got != c.want {
			t.Errorf("ComputePay(%s, %v) = %v, want %v", c.rate, c.hours, got, c.want)
		}
	}

	if _, err := svc.ComputePay("abc", 1); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("ComputePay with bad rate: want validation error, got %v", err)
	}
}
