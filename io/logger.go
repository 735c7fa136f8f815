package claimio

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger provides leveled logging for CLI front ends. Errors and warnings go
// to the manager's error stream, everything else to the output stream.
type Logger struct {
	io         *IOManager
	minLevel   LogLevel
	withTime   bool
	timeFormat string
	colors     map[LogLevel]*color.Color
}

// NewLogger creates a logger bound to the given IOManager.
func NewLogger(io *IOManager) *Logger {
	l := &Logger{
		io:         io,
		minLevel:   LevelInfo,
		timeFormat: "15:04:05",
		colors: map[LogLevel]*color.Color{
			LevelDebug:   color.New(color.FgMagenta),
			LevelInfo:    color.New(color.FgCyan),
			LevelWarning: color.New(color.FgYellow),
			LevelError:   color.New(color.FgRed, color.Bold),
		},
	}
	l.syncColors()
	return l
}

// syncColors aligns each color with the manager's color decision so output
// is deterministic regardless of fatih/color's global auto-detection.
func (l *Logger) syncColors() {
	for _, c := range l.colors {
		if l.io.SupportsColor() {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// WithMinLevel sets the minimum level that is emitted.
func (l *Logger) WithMinLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// WithTime enables a timestamp prefix on every line.
func (l *Logger) WithTime(enabled bool) *Logger {
	l.withTime = enabled
	return l
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }

// Infof logs an info-level message.
func (l *Logger) Infof(format string, args ...any) { l.logf(LevelInfo, format, args...) }

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, args ...any) { l.logf(LevelWarning, format, args...) }

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

func (l *Logger) logf(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	l.syncColors()

	out := l.io.Out()
	if level >= LevelWarning {
		out = l.io.Err()
	}

	prefix := l.colors[level].Sprintf("[%s]", level)
	if l.withTime {
		prefix = time.Now().Format(l.timeFormat) + " " + prefix
	}
	fmt.Fprintf(out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
