package sound

import "github.com/ayoisaiah/meditate/internal/apperr"

var errSpeakerUnavailable = &apperr.Error{
	Message: "audio output is unavailable",
}
