package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

var log = newConsole(os.Stderr, false)

func Log() *zerolog.Logger {
	return &log
}

// SetConsoleWriter sends human-readable events to w.
func SetConsoleWriter(w io.Writer, noColor bool) {
	log = newConsole(w, noColor)
}

// SetJSONWriter sends one JSON object per event to w.
func SetJSONWriter(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

func SetLevel(level string) error {
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	log = log.Level(l)
	return nil
}

func newConsole(w io.Writer, noColor bool) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:         w,
		NoColor:     noColor,
		TimeFormat:  "15:04:05.000",
		FormatLevel: formatLevel(noColor),
	}).With().Timestamp().Logger()
}

type level struct {
	label string
	color *color.Color
}

var levels = map[string]level{
	"trace": {"TRC", color.New(color.FgMagenta)},
	"debug": {"DBG", color.New(color.FgYellow)},
	"info":  {"INF", color.New(color.FgGreen)},
	"warn":  {"WRN", color.New(color.FgRed)},
	"error": {"ERR", color.New(color.FgRed, color.Bold)},
	"fatal": {"FTL", color.New(color.FgRed, color.Bold)},
	"panic": {"PNC", color.New(color.FgRed, color.Bold)},
}

func formatLevel(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		ll, _ := i.(string)
		l, ok := levels[ll]
		if !ok {
			return "???"
		}
		if noColor {
			return l.label
		}
		return l.color.Sprint(l.label)
	}
}

// Since is a shorthand for logging elapsed time as a duration string.
func Since(e *zerolog.Event, start time.Time) *zerolog.Event {
	return e.Str("dur", time.Since(start).String())
}
