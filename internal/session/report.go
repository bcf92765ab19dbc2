package session

import (
	"fmt"
	"strings"
	"time"
)

// Report is the summary produced when a session completes.
type Report struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Intent       string    `json:"intent"`
	Duration     string    `json:"duration"`
	Checkins     []string  `json:"checkins"`
	CheckinLines []string  `json:"checkin_lines"`
	CheckinCount int       `json:"checkin_count"`
	TotalSeconds int       `json:"total_seconds"`
}

// DisplayIntent trims the intent and falls back to the placeholder when it is
// blank.
func DisplayIntent(intent string) string {
	intent = strings.TrimSpace(intent)
	if intent == "" {
		return IntentPlaceholder
	}

	return intent
}

// CheckinLines numbers each check-in label for display.
func CheckinLines(checkins []string) []string {
	if len(checkins) == 0 {
		return []string{NoCheckinsLine}
	}

	lines := make([]string, len(checkins))
	for i, label := range checkins {
		lines[i] = fmt.Sprintf("Check-in %d at %s", i+1, label)
	}

	return lines
}

func newReport(s *Session, endTime time.Time) *Report {
	checkins := make([]string, len(s.Checkins))
	copy(checkins, s.Checkins)

	return &Report{
		StartTime:    s.StartTime,
		EndTime:      endTime,
		Intent:       DisplayIntent(s.Intent),
		Duration:     FormatClock(s.TotalSeconds),
		Checkins:     checkins,
		CheckinLines: CheckinLines(checkins),
		CheckinCount: len(checkins),
		TotalSeconds: s.TotalSeconds,
	}
}
