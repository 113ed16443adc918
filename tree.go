package timber

import "sync"

// Tree is the unit of log consumption: anything that accepts the four level
// calls and a one-time tag. Plant trees into a [Forest] (or the package
// default via [Plant]) to have them receive every dispatched call.
//
// Tree implementations should be pointer types; the registry compares trees
// by identity when uprooting.
type Tree interface {
	// Debug logs a message at Debug level.
	Debug(msg string, args ...any)
	// Info logs a message at Info level.
	Info(msg string, args ...any)
	// Warn logs a message at Warn level.
	Warn(msg string, args ...any)
	// Error logs a message at Error level.
	Error(msg string, args ...any)
	// SetTag sets the tree's one-time tag, overwriting any pending value.
	// The tag is consumed by the tree's next level call. The empty string
	// clears a pending tag.
	SetTag(tag string)
}

// Sink is the write hook a concrete tree must supply. It receives the level,
// the consumed one-time tag (empty when none was set), and the message with
// its extra values forwarded unchanged.
type Sink interface {
	Log(level Level, tag, msg string, args ...any)
}

// Filter is an optional gate a [Sink] may additionally implement. Loggable is
// consulted once per level call, after the one-time tag has been consumed and
// before the write hook; returning false drops the call. A sink without
// Filter receives every call.
type Filter interface {
	Loggable(level Level, tag string) bool
}

// SinkTree adapts a [Sink] into a [Tree]. Every level call runs the same
// pipeline: consume the one-time tag, consult the sink's [Filter] if it has
// one, then invoke the write hook.
//
// Create instances with [New]. Safe for concurrent use; the tag slot is
// read-and-cleared in a single step so two racing calls never observe the
// same tag.
type SinkTree struct {
	sink Sink
	mu   sync.Mutex
	tag  string
}

// New returns a [SinkTree] funneling into sink's write hook.
func New(sink Sink) *SinkTree {
	return &SinkTree{sink: sink}
}

// Debug logs a message at Debug level.
func (t *SinkTree) Debug(msg string, args ...any) {
	t.emit(LevelDebug, msg, args)
}

// Info logs a message at Info level.
func (t *SinkTree) Info(msg string, args ...any) {
	t.emit(LevelInfo, msg, args)
}

// Warn logs a message at Warn level.
func (t *SinkTree) Warn(msg string, args ...any) {
	t.emit(LevelWarn, msg, args)
}

// Error logs a message at Error level.
func (t *SinkTree) Error(msg string, args ...any) {
	t.emit(LevelError, msg, args)
}

// SetTag sets the one-time tag consumed by the next level call,
// overwriting any pending value.
func (t *SinkTree) SetTag(tag string) {
	t.mu.Lock()
	t.tag = tag
	t.mu.Unlock()
}

// consumeTag reads and clears the pending tag in one atomic step.
func (t *SinkTree) consumeTag() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	tag := t.tag
	t.tag = ""

	return tag
}

func (t *SinkTree) emit(level Level, msg string, args []any) {
	// The filter sees the already-consumed tag: the slot is cleared even
	// when the call is dropped.
	tag := t.consumeTag()

	if f, ok := t.sink.(Filter); ok && !f.Loggable(level, tag) {
		return
	}

	t.sink.Log(level, tag, msg, args...)
}
