package log

import (
	"iter"
	"log/slog"
	"strings"
)

// Level represents the severity of a log record.
//
// The ordering follows [log/slog]: DEBUG < INFO < WARNING < ERROR < CRITICAL.
// CRITICAL is an extension level above [slog.LevelError].
type Level slog.Level

const (
	LevelDebug    Level = Level(slog.LevelDebug)
	LevelInfo     Level = Level(slog.LevelInfo)
	LevelWarning  Level = Level(slog.LevelWarn)
	LevelError    Level = Level(slog.LevelError)
	LevelCritical Level = Level(slog.LevelError + 4)
)

// DefaultLevel is the console level used when no verbosity is requested.
const DefaultLevel = LevelWarning

// levelNameWidth is the rendered width of a level name on the console.
// Names shorter than this are right-padded with spaces.
const levelNameWidth = 8

// String returns the canonical upper-case name of the level.
// Unnamed levels render the way [slog.Level.String] renders them.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return slog.Level(l).String()
	}
}

// Levels returns an iterator over all defined level names, least to most
// severe.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range []Level{
			LevelDebug,
			LevelInfo,
			LevelWarning,
			LevelError,
			LevelCritical,
		} {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a string representation of a log level.
// Valid level strings are "DEBUG", "INFO", "WARNING", "ERROR", and
// "CRITICAL", compared case-insensitively. Unrecognized input falls back to
// [DefaultLevel].
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARNING", "WARN":
		return LevelWarning
	case "ERROR":
		return LevelError
	case "CRITICAL", "CRIT":
		return LevelCritical
	}

	// Fall back to slog's own parser for offset forms like "INFO+2".
	l := new(slog.Level)

	err := l.UnmarshalText([]byte(s))
	if err != nil {
		return DefaultLevel
	}

	return Level(*l)
}

// Verbosity maps a count of -v flags to a console level.
// Zero yields WARNING, one yields INFO, and two or more yield DEBUG.
// Negative counts are treated as zero.
func Verbosity(count int) Level {
	switch {
	case count <= 0:
		return LevelWarning
	case count == 1:
		return LevelInfo
	default:
		return LevelDebug
	}
}
