package utils

import "time"

// Timestamps are stored and rendered in UTC.

func NowUTC() time.Time { return time.Now().UTC() }

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
