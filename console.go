package timber

import (
	"io"
	"os"

	log "charm.land/log/v2"
)

// Console is a [Sink] writing styled, human-readable lines via
// [charm.land/log/v2]. A present one-time tag precedes the message as
// "[tag]". Debug and Info route to standard output, Warn and Error to
// standard error; extras are rendered as key/value pairs.
//
// Console implements [Filter] as a severity threshold, set with
// [WithMinLevel]. The default threshold is [LevelDebug] (everything passes).
//
// Create instances with [NewConsole].
type Console struct {
	out      *log.Logger
	errOut   *log.Logger
	minLevel Level
}

// ConsoleOption configures a [Console].
type ConsoleOption func(*consoleConfig)

type consoleConfig struct {
	out      io.Writer
	errOut   io.Writer
	minLevel Level
}

// WithOutput sets the writer for Debug and Info lines.
func WithOutput(w io.Writer) ConsoleOption {
	return func(c *consoleConfig) {
		c.out = w
	}
}

// WithErrOutput sets the writer for Warn and Error lines.
func WithErrOutput(w io.Writer) ConsoleOption {
	return func(c *consoleConfig) {
		c.errOut = w
	}
}

// WithMinLevel sets the severity threshold below which calls are dropped.
func WithMinLevel(level Level) ConsoleOption {
	return func(c *consoleConfig) {
		c.minLevel = level
	}
}

// NewConsole creates a [Console] with the given options. The defaults are
// standard output, standard error, and a [LevelDebug] threshold.
func NewConsole(opts ...ConsoleOption) *Console {
	cfg := &consoleConfig{
		out:      os.Stdout,
		errOut:   os.Stderr,
		minLevel: LevelDebug,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Console{
		out:      newCharmLogger(cfg.out),
		errOut:   newCharmLogger(cfg.errOut),
		minLevel: cfg.minLevel,
	}
}

// newCharmLogger builds an unfiltered charm logger; level gating is the
// Loggable hook's job, not the underlying logger's.
func newCharmLogger(w io.Writer) *log.Logger {
	l := log.New(w)
	l.SetLevel(log.DebugLevel)

	return l
}

// Loggable implements [Filter]: only calls at or above the configured
// minimum level proceed to the write hook.
func (c *Console) Loggable(level Level, _ string) bool {
	return level.Slog() >= c.minLevel.Slog()
}

// Log implements [Sink].
func (c *Console) Log(level Level, tag, msg string, args ...any) {
	if tag != "" {
		if msg == "" {
			msg = "[" + tag + "]"
		} else {
			msg = "[" + tag + "] " + msg
		}
	}

	l := c.out
	if level == LevelWarn || level == LevelError {
		l = c.errOut
	}

	switch level {
	case LevelDebug:
		l.Debug(msg, args...)
	case LevelInfo:
		l.Info(msg, args...)
	case LevelWarn:
		l.Warn(msg, args...)
	default:
		l.Error(msg, args...)
	}
}
