// Package models defines the records persisted to the session history
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/meditate/internal/session"
)

// Session is a finished or abandoned meditation session.
type Session struct {
	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	EndTime   time.Time     `json:"end_time"   yaml:"end_time"`
	ID        string        `json:"id"         yaml:"id"`
	Intent    string        `json:"intent"     yaml:"intent"`
	Tags      []string      `json:"tags"       yaml:"tags,omitempty"`
	Checkins  []string      `json:"checkins"   yaml:"checkins,omitempty"`
	Duration  time.Duration `json:"duration"   yaml:"duration"`
	Elapsed   time.Duration `json:"elapsed"    yaml:"elapsed"`
	Completed bool          `json:"completed"  yaml:"completed"`
}

// FromReport builds the record of a completed session.
func FromReport(r *session.Report, tags []string) *Session {
	return &Session{
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		ID:        uuid.NewString(),
		Intent:    r.Intent,
		Tags:      tags,
		Checkins:  r.Checkins,
		Duration:  time.Duration(r.TotalSeconds) * time.Second,
		Elapsed:   time.Duration(r.TotalSeconds) * time.Second,
		Completed: true,
	}
}

// FromSnapshot builds the record of a session that was interrupted at
// endTime.
func FromSnapshot(s session.Snapshot, tags []string, endTime time.Time) *Session {
	return &Session{
		StartTime: s.StartTime,
		EndTime:   endTime,
		ID:        uuid.NewString(),
		Intent:    session.DisplayIntent(s.Intent),
		Tags:      tags,
		Checkins:  s.Checkins,
		Duration:  time.Duration(s.TotalSeconds) * time.Second,
		Elapsed:   time.Duration(s.Elapsed()) * time.Second,
		Completed: false,
	}
}
