package breaks

import "time"

// Rule deducts an unpaid break once the raw worked duration reaches MinWorked.
type Rule struct {
	MinWorked time.Duration
	Deduction time.Duration
}

// Rules are evaluated top to bottom, longest threshold first, and the first
// match wins. A shift below the smallest threshold gets no deduction.
var Rules = []Rule{
	{MinWorked: 8*time.Hour + 10*time.Minute, Deduction: 45 * time.Minute},
	{MinWorked: 6*time.Hour + 10*time.Minute, Deduction: 30 * time.Minute},
	{MinWorked: 4*time.Hour + 10*time.Minute, Deduction: 15 * time.Minute},
}

// Deduction returns the break to subtract for a raw worked duration.
func Deduction(worked time.Duration) time.Duration {
	for _, r := range Rules {
		if worked >= r.MinWorked {
			return r.Deduction
		}
	}
	return 0
}

// Apply subtracts the applicable break from a raw worked duration.
func Apply(worked time.Duration) time.Duration {
	return worked - Deduction(worked)
}
