package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Development gets human-readable console
// output; everything else writes JSON lines.
func New(appName, level string, development bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, appName, level, development)
}

func NewWithWriter(w io.Writer, appName, level string, development bool) zerolog.Logger {
	if development {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	l := zerolog.New(w).Level(ParseLevel(level)).With().Timestamp()
	if appName != "" {
		l = l.Str("app", appName)
	}
	return l.Logger()
}

// ParseLevel falls back to info for unknown or empty levels.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
