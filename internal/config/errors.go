package config

import "github.com/ayoisaiah/meditate/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPromptFailed = &apperr.Error{
		Message: "user prompt failed",
	}

	errNoPresets = &apperr.Error{
		Message: "at least one session preset must be configured",
	}

	errInvalidDuration = &apperr.Error{
		Message: "preset %v must be between %v and %v",
	}

	errFractionalDuration = &apperr.Error{
		Message: "preset %v must be a whole number of seconds",
	}

	errDuplicatePreset = &apperr.Error{
		Message: "preset %v is listed more than once",
	}

	errUnknownPreset = &apperr.Error{
		Message: "duration %v is not one of the configured presets (%s)",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid duration %q",
	}

	errInvalidFrequency = &apperr.Error{
		Message: "%s frequency must be between %v and %v Hz, got %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %q",
	}
)
