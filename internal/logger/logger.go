// Package logger wraps zerolog for the crmath packages.
//
// The engine itself never logs on the hot path; only plan resolution,
// configuration parsing and the table generator emit records. The
// default level is warn so that importing crmath stays quiet.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Log is the package-wide logger instance wrapper. The pointer itself
// never changes; SetupWriter swaps the zerolog logger behind it, so
// reconfiguring while other goroutines log is safe.
var Log = &Logger{}

type Logger struct {
	z atomic.Pointer[zerolog.Logger]
}

func init() {
	Setup(os.Getenv("CRMATH_LOG_LEVEL"), os.Getenv("CRMATH_LOG_FORMAT"))
}

// ParseLevel maps a level name to a zerolog level. Unknown or empty
// names map to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// Setup configures the package logger writing to stderr.
func Setup(level string, format string) {
	SetupWriter(os.Stderr, level, format)
}

// SetupWriter configures the package logger writing to w.
// The level applies to this logger only, never to zerolog's global level.
func SetupWriter(w io.Writer, level string, format string) {
	var z zerolog.Logger
	if strings.ToLower(format) == "json" {
		z = zerolog.New(w).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		z = zerolog.New(output).With().Timestamp().Logger()
	}
	z = z.Level(ParseLevel(level))
	Log.z.Store(&z)
}

// Level reports the active level.
func (l *Logger) Level() zerolog.Level {
	return l.z.Load().GetLevel()
}

// Info logs at Info level with variadic key-value pairs
func (l *Logger) Info(msg string, args ...any) {
	e := l.z.Load().Info()
	addFields(e, args...)
	e.Msg(msg)
}

// Debug logs at Debug level with variadic key-value pairs
func (l *Logger) Debug(msg string, args ...any) {
	e := l.z.Load().Debug()
	addFields(e, args...)
	e.Msg(msg)
}

// Warn logs at Warn level with variadic key-value pairs
func (l *Logger) Warn(msg string, args ...any) {
	e := l.z.Load().Warn()
	addFields(e, args...)
	e.Msg(msg)
}

// Error logs at Error level with variadic key-value pairs
func (l *Logger) Error(msg string, args ...any) {
	e := l.z.Load().Error()
	addFields(e, args...)
	e.Msg(msg)
}

// addFields adds variadic key-value pairs to the event. A trailing key
// without a value is dropped.
func addFields(e *zerolog.Event, args ...any) {
	if e == nil {
		return
	}
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", args[i])
		}
		if err, ok := args[i+1].(error); ok {
			e.AnErr(key, err)
			continue
		}
		e.Interface(key, args[i+1])
	}
}
