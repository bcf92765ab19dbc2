package store

import "github.com/ayoisaiah/meditate/internal/apperr"

var (
	errAlreadyRunning = &apperr.Error{
		Message: "is meditate already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "opening session history at %s failed",
	}

	errCorruptRecord = &apperr.Error{
		Message: "session record %s could not be decoded",
	}
)
