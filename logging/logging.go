package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// utcTimestamp stamps each event in UTC without touching zerolog's globals
type utcTimestamp struct{}

func (utcTimestamp) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Time(zerolog.TimestampFieldName, time.Now().UTC())
}

// New returns a console logger writing to out at the given level
func New(out io.Writer, level string) zerolog.Logger {
	w := zerolog.ConsoleWriter{
		Out:          out,
		TimeFormat:   time.RFC3339,
		TimeLocation: time.UTC,
	}
	return zerolog.New(w).Level(ParseLevel(level)).Hook(utcTimestamp{})
}
