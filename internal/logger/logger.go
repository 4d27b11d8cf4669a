// Package logger provides the leveled logger shared by every component.
// Three levels: off (silent), normal (info, warn, error) and verbose (adds
// debug). Safe for concurrent use.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level controls the verbosity of the logger.
type Level int32

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// String returns the config name of the level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelVerbose:
		return "verbose"
	default:
		return "normal"
	}
}

// ParseLevel maps a config value to a Level. Unknown values fall back to
// LevelNormal and report ok=false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "quiet", "none":
		return LevelOff, true
	case "verbose", "debug":
		return LevelVerbose, true
	case "normal", "info", "":
		return LevelNormal, true
	default:
		return LevelNormal, false
	}
}

// severity is one output line kind: its tag and the level it needs.
type severity struct {
	tag string
	min Level
}

var (
	sevDebug = severity{"[DBG] ", LevelVerbose}
	sevInfo  = severity{"[INF] ", LevelNormal}
	sevWarn  = severity{"[WRN] ", LevelNormal}
	sevError = severity{"[ERR] ", LevelNormal}
)

// Logger is a leveled logger.
type Logger struct {
	level atomic.Int32
	out   *log.Logger
}

// New creates a logger at level writing to out (os.Stderr when nil).
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	l := &Logger{out: log.New(out, "", log.Ldate|log.Ltime)}
	l.level.Store(int32(level))
	return l
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) { l.level.Store(int32(level)) }

// GetLevel returns the current log level.
func (l *Logger) GetLevel() Level { return Level(l.level.Load()) }

func (l *Logger) emit(s severity, format string, args []any) {
	if l.GetLevel() < s.min {
		return
	}
	// log.Logger serialises writes, so lines never interleave.
	l.out.Output(3, s.tag+fmt.Sprintf(format, args...))
}

// Debug logs at debug level (verbose only).
func (l *Logger) Debug(format string, args ...any) { l.emit(sevDebug, format, args) }

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) { l.emit(sevInfo, format, args) }

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) { l.emit(sevWarn, format, args) }

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) { l.emit(sevError, format, args) }

// Writer returns an io.Writer that logs each write as one line: debug for
// LevelVerbose, info otherwise. echo, gorm and the stdlib log package are
// routed through it.
func (l *Logger) Writer(level Level) io.Writer {
	s := sevInfo
	if level >= LevelVerbose {
		s = sevDebug
	}
	return lineWriter{l: l, sev: s}
}

type lineWriter struct {
	l   *Logger
	sev severity
}

func (w lineWriter) Write(p []byte) (int, error) {
	if msg := strings.TrimRight(string(p), "\n"); msg != "" {
		w.l.emit(w.sev, "%s", []any{msg})
	}
	return len(p), nil
}
