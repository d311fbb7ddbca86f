package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with the printf-style API the rest of the
// codebase uses.
type Logger struct {
	z zerolog.Logger
}

func New() *Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return &Logger{
		z: zerolog.New(writer).With().Timestamp().Logger(),
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.z.Info().Msgf(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.z.Warn().Msgf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.z.Error().Msgf(format, args...)
}
