package timber

import (
	"context"
	"log/slog"
	"time"
)

// SlogSink is a [Sink] that forwards log calls to a [slog.Handler].
//
// The consumed one-time tag, when present, is attached as a "tag" attribute,
// and extras are passed through as slog arguments (alternating key/value
// pairs, or [slog.Attr] values). The handler's own level gate doubles as the
// tree's [Filter], so a handler built with [NewHandler] at [LevelWarn] drops
// Debug and Info calls before they reach it.
type SlogSink struct {
	handler slog.Handler
}

// NewSlogSink returns a [SlogSink] forwarding to h.
func NewSlogSink(h slog.Handler) *SlogSink {
	return &SlogSink{handler: h}
}

// Loggable implements [Filter] by asking the handler whether it is enabled
// for the level.
func (s *SlogSink) Loggable(level Level, _ string) bool {
	return s.handler.Enabled(context.Background(), level.Slog())
}

// Log implements [Sink].
func (s *SlogSink) Log(level Level, tag, msg string, args ...any) {
	r := slog.NewRecord(time.Now(), level.Slog(), msg, 0)

	if tag != "" {
		r.AddAttrs(slog.String("tag", tag))
	}

	r.Add(args...)

	//nolint:errcheck // A failing handler has nowhere to report to.
	s.handler.Handle(context.Background(), r)
}
