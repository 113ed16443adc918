package timber

import (
	"errors"
	"log/slog"
	"strings"
)

// Level identifies the severity of a log call.
type Level string

const (
	// LevelDebug is for messages useful only while diagnosing problems.
	LevelDebug Level = "debug"
	// LevelInfo is for general progress messages.
	LevelInfo Level = "info"
	// LevelWarn is for conditions that might indicate problems.
	LevelWarn Level = "warn"
	// LevelError is for conditions that prevent normal operation.
	LevelError Level = "error"
)

// ErrUnknownLogLevel indicates an unrecognized log level string.
var ErrUnknownLogLevel = errors.New("unknown log level")

// String returns the level name.
func (l Level) String() string {
	return string(l)
}

// Slog returns the [slog.Level] equivalent, defaulting to [slog.LevelInfo]
// for values outside the four-level vocabulary.
func (l Level) Slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	}

	return slog.LevelInfo
}

// ParseLevel parses a log level string and returns the corresponding
// [Level]. Matching is case-insensitive and accepts "warning" for
// [LevelWarn].
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}

	return "", ErrUnknownLogLevel
}

// GetAllLevelStrings returns all level names, ordered from least to most
// severe. Useful for CLI flag completion.
func GetAllLevelStrings() []string {
	return []string{
		string(LevelDebug),
		string(LevelInfo),
		string(LevelWarn),
		string(LevelError),
	}
}
