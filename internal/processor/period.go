package processor

import (
	"errors"
	"regexp"
	"time"
)

var ErrInvalidPeriod = errors.New("period must be formatted YYYY-MM")

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// PeriodFromTime returns the YYYY-MM bucket of t in t's own location.
func PeriodFromTime(t time.Time) string {
	return t.Format("2006-01")
}

// CurrentPeriod returns the local calendar month.
func CurrentPeriod() string {
	return PeriodFromTime(time.Now())
}

// ParsePeriod validates s, falling back to the current period when s is empty.
func ParsePeriod(s string) (string, error) {
	if s == "" {
		return CurrentPeriod(), nil
	}
	if !periodPattern.MatchString(s) {
		return "", ErrInvalidPeriod
	}
	return s, nil
}
