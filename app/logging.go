package app

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// logLevel is raised or lowered once the config file has been read.
var logLevel = new(slog.LevelVar)

// setupLogging sends structured logs to a rotating file so that they never
// interfere with the terminal UI.
func setupLogging(path string) io.Closer {
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     30,
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	}))

	slog.SetDefault(logger)

	return w
}
