package logger

import (
	"log/slog"
	"os"
)

// New returns the structured JSON logger used by command entry points.
// ADMS_LOG_LEVEL selects debug logging; anything else stays at info.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("ADMS_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
