package clock

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Accepts only zero-padded 24-hour times: "09:30" yes, "9:30" no.
var timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// TimeOfDay is a naive wall-clock time without a date or zone.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Parse converts a strict "HH:MM" string into a TimeOfDay.
func Parse(s string) (TimeOfDay, error) {
	m := timeRe.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	var t TimeOfDay
	fmt.Sscanf(m[1], "%d", &t.Hour)
	fmt.Sscanf(m[2], "%d", &t.Minute)
	return t, nil
}

// IsValid reports whether s is a well-formed "HH:MM" time.
func IsValid(s string) bool {
	return timeRe.MatchString(s)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Sub returns the signed span from u to t. Negative means t precedes u.
func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return time.Duration(t.Hour-u.Hour)*time.Hour + time.Duration(t.Minute-u.Minute)*time.Minute
}

// ParseRange splits the stored "HH:MM - HH:MM" encoding into its two times.
func ParseRange(s string) (start, end TimeOfDay, err error) {
	parts := strings.SplitN(s, " - ", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, TimeOfDay{}, fmt.Errorf("invalid time range %q: want \"HH:MM - HH:MM\"", s)
	}
	if start, err = Parse(strings.TrimSpace(parts[0])); err != nil {
		return TimeOfDay{}, TimeOfDay{}, err
	}
	if end, err = Parse(strings.TrimSpace(parts[1])); err != nil {
		return TimeOfDay{}, TimeOfDay{}, err
	}
	return start, end, nil
}

// FormatRange renders a start/end pair in the stored "HH:MM - HH:MM" encoding.
func FormatRange(start, end TimeOfDay) string {
	return start.String() + " - " + end.String()
}

// DecimalHours encodes a duration as the tracker's decimal form: the hour
// count before the point and the minute count as a two-digit fraction, so
// 7h30m is 7.30, not 7.5. Stored totals use this encoding throughout.
func DecimalHours(d time.Duration) float64 {
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	return float64(h) + float64(m)/100
}
