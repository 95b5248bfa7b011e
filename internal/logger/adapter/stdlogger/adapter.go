// Package stdlogger adapts the zerolog global logger to printf style
// interfaces, e.g. the gorm logger Writer.
package stdlogger

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// StdLogger wraps zerolog behind printf style methods.
type StdLogger struct {
	logger zerolog.Logger
}

// New creates a StdLogger using the global zerolog logger.
func New() *StdLogger {
	return &StdLogger{logger: log.Logger}
}

// Printf implements the gorm logger.Writer interface.
func (l *StdLogger) Printf(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

// Debugf logs at debug level.
func (l *StdLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug().Msgf(format, v...)
}

// Infof logs at info level.
func (l *StdLogger) Infof(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

// Warningf logs at warn level.
func (l *StdLogger) Warningf(format string, v ...interface{}) {
	l.logger.Warn().Msgf(format, v...)
}

// Errorf logs at error level.
func (l *StdLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error().Msgf(format, v...)
}
