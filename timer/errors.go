package timer

import "github.com/ayoisaiah/meditate/internal/apperr"

var (
	errParseSessionCmd = &apperr.Error{
		Message: "unable to parse session command %q",
	}

	errRunSessionCmd = &apperr.Error{
		Message: "session command %q failed",
	}

	errWriteStatus = &apperr.Error{
		Message: "unable to write status file",
	}

	errReadStatus = &apperr.Error{
		Message: "unable to read status file",
	}
)
