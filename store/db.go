package store

import (
	"time"

	"github.com/ayoisaiah/meditate/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// SaveSession stores a finished or abandoned session. A session with the
	// same start time is overwritten.
	SaveSession(sess *models.Session) error
	// GetSessions returns saved sessions that overlap the given period,
	// optionally restricted to those carrying one of the tags
	GetSessions(since, until time.Time, tags []string) ([]*models.Session, error)
	// DeleteSessions deletes the sessions that started at the given times
	DeleteSessions(startTimes []time.Time) error
	// Close ends the database connection
	Close() error
}
