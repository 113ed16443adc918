package timber

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Format represents the output format of handlers built by [NewHandler].
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format with source locations.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs logs in logfmt format without source locations.
	FormatText Format = "text"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// NewHandlerFromStrings creates a [slog.Handler] by strings, for wiring
// directly to flag values.
func NewHandlerFromStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	logLvl, err := ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	logFmt, err := ParseFormat(logFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, logLvl, logFmt), nil
}

// NewHandler creates a [slog.Handler] with the specified level and format.
// Wrap it with [NewSlogSink] and [New] to plant it as a tree.
func NewHandler(w io.Writer, logLvl Level, logFmt Format) slog.Handler {
	switch logFmt {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     logLvl.Slog(),
		})

	case FormatLogfmt:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     logLvl.Slog(),
		})

	case FormatText:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: logLvl.Slog(),
		})
	}

	return nil
}

// ParseFormat parses a log format string and returns the corresponding
// [Format].
func ParseFormat(format string) (Format, error) {
	logFmt := Format(strings.ToLower(format))
	if slices.Contains([]Format{FormatJSON, FormatLogfmt, FormatText}, logFmt) {
		return logFmt, nil
	}

	return "", ErrUnknownLogFormat
}

// GetAllFormatStrings returns all format names. Useful for CLI flag
// completion.
func GetAllFormatStrings() []string {
	return []string{
		string(FormatJSON),
		string(FormatLogfmt),
		string(FormatText),
	}
}
