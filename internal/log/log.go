// Package log is the leveled logger of the command-line tools. The dsp
// packages never log.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync/atomic"
)

// Level is a message severity.
type Level uint32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// ParseLevel parses a level name, case-insensitively. "WARNING" is accepted
// for LevelWarn. Unknown names yield LevelInfo and false.
func ParseLevel(s string) (Level, bool) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "WARNING" {
		return LevelWarn, true
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), true
		}
	}
	return LevelInfo, false
}

var (
	level  atomic.Uint32
	logger = stdlog.New(os.Stderr, "", stdlog.Ldate|stdlog.Ltime|stdlog.Lmicroseconds)
	exit   = os.Exit
)

func init() {
	SetLevel(LevelInfo)
}

// SetLevel sets the minimum level that is written.
func SetLevel(l Level) { level.Store(uint32(l)) }

// GetLevel returns the minimum level that is written.
func GetLevel() Level { return Level(level.Load()) }

// SetOutput redirects log output. Flags are kept.
func SetOutput(w io.Writer) { logger.SetOutput(w) }

// Enabled reports whether messages at l are written.
func Enabled(l Level) bool { return l >= GetLevel() }

func output(l Level, msg string) {
	// WARN and INFO are padded so messages line up with DEBUG and ERROR.
	_ = logger.Output(3, fmt.Sprintf("[%-5s] %s", l, msg))
}

// Debugf logs at LevelDebug.
func Debugf(format string, v ...any) {
	if Enabled(LevelDebug) {
		output(LevelDebug, fmt.Sprintf(format, v...))
	}
}

// Infof logs at LevelInfo.
func Infof(format string, v ...any) {
	if Enabled(LevelInfo) {
		output(LevelInfo, fmt.Sprintf(format, v...))
	}
}

// Warnf logs at LevelWarn.
func Warnf(format string, v ...any) {
	if Enabled(LevelWarn) {
		output(LevelWarn, fmt.Sprintf(format, v...))
	}
}

// Errorf logs at LevelError.
func Errorf(format string, v ...any) {
	if Enabled(LevelError) {
		output(LevelError, fmt.Sprintf(format, v...))
	}
}

// Fatalf logs regardless of level and exits with status 1.
func Fatalf(format string, v ...any) {
	output(LevelFatal, fmt.Sprintf(format, v...))
	exit(1)
}
