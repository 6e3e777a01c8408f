// internal/platform/logx/logx.go
package logx

import (
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is the structured logger shared by every component. Fields are
// passed as alternating key/value pairs.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Err(err error, kv ...any)
	With(kv ...any) Logger
	SetLevel(lvl Level)
}

type charmLogger struct {
	lg *charmlog.Logger
}

// New creates a logger writing to stderr, honouring BIORULES_LOG_LEVEL.
func New() Logger {
	return NewWithLevel(ParseLevel(os.Getenv("BIORULES_LOG_LEVEL")))
}

// NewWithLevel creates a logger with a specific log level
func NewWithLevel(lvl Level) Logger {
	return &charmLogger{
		lg: charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			Level:           toCharm(lvl),
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		}),
	}
}

// NewWithWriter creates a logfmt logger on w without timestamps. Used by
// tests and by callers that capture log output.
func NewWithWriter(w io.Writer, lvl Level) Logger {
	return &charmLogger{
		lg: charmlog.NewWithOptions(w, charmlog.Options{
			Level:     toCharm(lvl),
			Formatter: charmlog.LogfmtFormatter,
		}),
	}
}

// NewSilent creates a logger that only outputs errors
func NewSilent() Logger {
	return NewWithLevel(LevelError)
}

func (c *charmLogger) With(kv ...any) Logger {
	return &charmLogger{lg: c.lg.With(kv...)}
}

func (c *charmLogger) SetLevel(lvl Level) {
	c.lg.SetLevel(toCharm(lvl))
}

func (c *charmLogger) Debug(msg string, kv ...any) { c.lg.Debug(msg, kv...) }
func (c *charmLogger) Info(msg string, kv ...any)  { c.lg.Info(msg, kv...) }
func (c *charmLogger) Warn(msg string, kv ...any)  { c.lg.Warn(msg, kv...) }
func (c *charmLogger) Err(err error, kv ...any) {
	if err == nil {
		return
	}
	kv = append([]any{"error", err.Error()}, kv...)
	c.lg.Error("", kv...)
}

func toCharm(l Level) charmlog.Level {
	switch l {
	case LevelDebug:
		return charmlog.DebugLevel
	case LevelWarn:
		return charmlog.WarnLevel
	case LevelError:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

// ParseLevel maps a level name to a Level. Unknown names fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return LevelDebug
	case "info", "inf", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "err", "error":
		return LevelError
	default:
		return LevelInfo
	}
}
