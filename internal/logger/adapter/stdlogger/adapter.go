// Package stdlogger adapts the global zerolog logger to the printf style
// writer of the gorm logger.
package stdlogger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger forwards Printf calls to zerolog.
type Logger struct {
	// PrintLevel is the level used for Printf.
	PrintLevel zerolog.Level
}

// New returns a Logger which logs on debug level.
func New() *Logger {
	return &Logger{PrintLevel: zerolog.DebugLevel}
}

// Printf implements gorm's logger.Writer.
func (l *Logger) Printf(format string, v ...interface{}) {
	log.WithLevel(l.PrintLevel).Msgf(format, v...)
}
