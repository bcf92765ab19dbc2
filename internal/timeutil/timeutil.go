// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// FromStr parses an absolute or relative date such as "2025-01-02 07:30" or
// "3 days ago", relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}

	return dt.Time, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// keyLayout is fixed width so that keys sort chronologically.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}

// FromKey parses a key produced by ToKey.
func FromKey(k []byte) (time.Time, error) {
	return time.Parse(keyLayout, string(k))
}
