package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger on w at info level, or debug
// level when verbose is set
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Timer measures one pipeline stage
type Timer struct {
	start time.Time
	name  string
	log   zerolog.Logger
}

// NewTimer starts a timer for the stage called name
func NewTimer(name string, log zerolog.Logger) *Timer {
	return &Timer{
		start: time.Now(),
		name:  name,
		log:   log,
	}
}

// Stop logs and returns the time since the timer started
func (t *Timer) Stop() time.Duration {
	duration := time.Since(t.start)
	t.log.Debug().
		Str("stage", t.name).
		Dur("duration", duration).
		Msg("stage finished")
	return duration
}
