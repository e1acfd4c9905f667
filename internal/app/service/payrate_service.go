package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"work-hours-bot/internal/domain"
)

// DefaultPayRate applies when the settings store has no value yet.
const DefaultPayRate = "11.11"

type PayRateService struct {
	Store domain.PayRateStore
}

func NewPayRateService(store domain.PayRateStore) *PayRateService {
	return &PayRateService{Store: store}
}

// Rate returns the stored pay rate, or the default when nothing is stored.
func (s *PayRateService) Rate() (string, error) {
	v, err := s.Store.Read()
	if err != nil {
		return "", err
	}
	if v == "" {
		return DefaultPayRate, nil
	}
	return v, nil
}

// SetRate validates and stores a new pay rate. Only positive decimals pass.
func (s *PayRateService) SetRate(value string) error {
	value = strings.TrimSpace(value)
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("%w: pay rate %q is not a number", domain.ErrValidation, value)
	}
	if rate <= 0 {
		return fmt.Errorf("%w: pay rate must be positive", domain.ErrValidation)
	}
	return s.Store.Write(value)
}

// ComputePay multiplies decimal hours by the rate, rounded to 2 places
// half away from zero.
func (s *PayRateService) ComputePay(rate string, hours float64) (float64, error) {
	r, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: pay rate %q is not a number", domain.ErrValidation, rate)
	}
	return math.Round(hours*r*100) / 100, nil
}
