// Package logger provides leveled logging for the pricing CLI and server.
//
// Verbosity levels (in increasing order):
//
//	Error < Info < Debug < Trace
//
// Example usage:
//
//	logger.SetVerbosity(2) // Debug
//	logger.Infof("evaluating %s %s", opt, greek)
//	logger.Debugf("spot=%f vol=%f", spot, vol)
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level represents a logging verbosity level.
// Higher values mean more verbose logging.
type Level int

const (
	Error Level = iota // Error logs only failures.
	Info               // Info logs one line per evaluated curve or request.
	Debug              // Debug logs resolved inputs and sampling bounds.
	Trace              // Trace logs per-point values.
)

var levelNames = []string{"error", "info", "debug", "trace"}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// current holds the active verbosity level.
// Only messages with level <= current are logged.
var current Level = Info

// std writes to stderr so curve output on stdout stays clean, e.g.
//
//	2026/01/25 15:42:10 curve.go:87 [INFO] curve built
var std = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

// SetVerbosity sets the global logging verbosity.
// Values outside Error..Trace are clamped.
func SetVerbosity(v int) {
	switch {
	case v < int(Error):
		v = int(Error)
	case v > int(Trace):
		v = int(Trace)
	}
	current = Level(v)
}

// Verbosity returns the active level.
func Verbosity() Level {
	return current
}

// ParseLevel maps "error", "info", "debug" or "trace" to a Level.
// Unknown names fall back to Info.
func ParseLevel(s string) Level {
	for i, name := range levelNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Level(i)
		}
	}
	return Info
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func logf(l Level, prefix, format string, args ...any) {
	if current >= l {
		// calldepth 3 reports the caller of Errorf/Infof/...
		std.Output(3, prefix+fmt.Sprintf(format, args...))
	}
}

// Errorf logs an error-level message.
func Errorf(format string, args ...any) {
	logf(Error, "[ERROR] ", format, args...)
}

// Infof logs an informational message.
func Infof(format string, args ...any) {
	logf(Info, "[INFO]  ", format, args...)
}

// Debugf logs debugging information.
func Debugf(format string, args ...any) {
	logf(Debug, "[DEBUG] ", format, args...)
}

// Tracef logs very detailed execution traces.
// Use this sparingly due to high volume.
func Tracef(format string, args ...any) {
	logf(Trace, "[TRACE] ", format, args...)
}
