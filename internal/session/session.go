// Package session implements the meditation session lifecycle: the countdown,
// the check-in log and the end-of-session report
package session

import (
	"slices"
	"time"
)

// Status represents the lifecycle state of a session.
type Status string

const (
	Idle     Status = "idle"
	Running  Status = "running"
	Complete Status = "complete"
)

const (
	// DefaultDuration is used when no preset is configured.
	DefaultDuration = 5 * 60

	// IntentPlaceholder replaces a blank intent in the report.
	IntentPlaceholder = "Quiet attention"

	// NoCheckinsLine is the only report line when no check-ins were logged.
	NoCheckinsLine = "No check-ins this time."
)

// Session is the single mutable session record owned by a Controller.
type Session struct {
	StartTime        time.Time `json:"start_time"`
	Intent           string    `json:"intent"`
	Status           Status    `json:"status"`
	Checkins         []string  `json:"checkins"`
	TotalSeconds     int       `json:"total_seconds"`
	RemainingSeconds int       `json:"remaining_seconds"`
}

// Snapshot is a read-only copy of the observable controller state.
type Snapshot struct {
	StartTime        time.Time `json:"start_time"`
	Report           *Report   `json:"report,omitempty"`
	Intent           string    `json:"intent"`
	Status           Status    `json:"status"`
	Remaining        string    `json:"remaining"`
	Checkins         []string  `json:"checkins"`
	Presets          []int     `json:"presets"`
	TotalSeconds     int       `json:"total_seconds"`
	RemainingSeconds int       `json:"remaining_seconds"`
	ActivePreset     int       `json:"active_preset"`
}

// Elapsed returns the number of whole seconds counted down so far.
func (s Snapshot) Elapsed() int {
	return s.TotalSeconds - s.RemainingSeconds
}

// Progress returns the fraction of the session that has elapsed.
func (s Snapshot) Progress() float64 {
	if s.TotalSeconds <= 0 {
		return 0
	}

	return float64(s.Elapsed()) / float64(s.TotalSeconds)
}

func (s *Session) snapshot(presets []int, report *Report) Snapshot {
	var rep *Report
	if report != nil {
		r := *report
		r.Checkins = slices.Clone(report.Checkins)
		r.CheckinLines = slices.Clone(report.CheckinLines)
		rep = &r
	}

	return Snapshot{
		StartTime:        s.StartTime,
		Report:           rep,
		Intent:           s.Intent,
		Status:           s.Status,
		Remaining:        FormatClock(s.RemainingSeconds),
		Checkins:         slices.Clone(s.Checkins),
		Presets:          slices.Clone(presets),
		TotalSeconds:     s.TotalSeconds,
		RemainingSeconds: s.RemainingSeconds,
		ActivePreset:     s.TotalSeconds,
	}
}

// reset puts the session back into the Idle state for the active preset.
func (s *Session) reset() {
	s.Status = Idle
	s.RemainingSeconds = s.TotalSeconds
	s.Checkins = nil
	s.StartTime = time.Time{}
}
