package utils

import "time"

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

func SystemClock() time.Time { return time.Now().UTC() }

// FormatShowTime renders a show start time for API responses.
func FormatShowTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ParseShowTime accepts RFC 3339 and the plain "2006-01-02 15:04:05" form
// the booking forms submit.
func ParseShowTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateTime, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// IsUpcoming reports whether a show starting at start has not yet begun.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}
