package logger

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Logger is the subset of *slog.Logger used by the pipeline stages.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})
}

// New returns a JSON logger tagged with a fresh run id.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
	})).With("run_id", uuid.NewString())
}

// Discard drops everything; handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
