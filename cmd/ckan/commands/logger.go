package commands

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/fivetwenty-io/ckan-client/pkg/ckan"
)

// zerologLogger implements ckan.Logger.
type zerologLogger struct {
	logger zerolog.Logger
}

// NewLogger returns a ckan.Logger writing to w. Debug entries are dropped
// unless debug is set.
func NewLogger(w io.Writer, debug bool) ckan.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return &zerologLogger{
		logger: zerolog.New(w).Level(level).With().Timestamp().Str("component", "ckan").Logger(),
	}
}

func (l *zerologLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
