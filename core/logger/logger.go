package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Logger is the global logger instance.
var Logger *log.Logger

func init() {
	Logger = newLogger(os.Stderr, log.WarnLevel)
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.New(w)
	l.SetTimeFormat("")
	l.SetLevel(level)
	l.SetPrefix("cush")
	return l
}

// ParseLevel converts a level name to a log level.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn", "":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.WarnLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Configure replaces the global logger with one writing to w at the given
// level. A nil writer means stderr.
func Configure(level string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if w == nil {
		w = os.Stderr
	}

	Logger = newLogger(w, lvl)
	return nil
}

// NewSession returns a child of the global logger tagged with a fresh session
// ID.
func NewSession() *log.Logger {
	return Logger.With("session", uuid.NewString())
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return newLogger(io.Discard, log.FatalLevel)
}
