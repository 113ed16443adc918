package timber

import (
	"errors"
	"slices"
	"sync"
)

var (
	// ErrNilTree indicates a nil tree was passed to Plant.
	ErrNilTree = errors.New("cannot plant a nil tree")
	// ErrSelfPlant indicates an attempt to plant a forest's own fan-out
	// handle back into that forest, which would recurse on dispatch.
	ErrSelfPlant = errors.New("cannot plant a forest into itself")
	// ErrNotPlanted indicates an attempt to uproot a tree that is not
	// currently planted.
	ErrNotPlanted = errors.New("cannot uproot a tree which is not planted")
)

// Forest is an ordered registry of planted trees. Level calls on a Forest
// fan out synchronously to every planted tree in planting order.
//
// The zero value is an empty, ready-to-use Forest. Safe for concurrent use;
// dispatch iterates a snapshot of the registry, so trees planted or uprooted
// during a call take effect on the next call.
//
// The same tree may be planted more than once. Each occurrence receives its
// own call on fan-out, and each Uproot removes one occurrence.
type Forest struct {
	mu    sync.RWMutex
	trees []Tree
}

// Plant appends each tree to the registry in argument order.
//
// It fails with [ErrNilTree] on a nil argument and with [ErrSelfPlant] when
// given the forest's own fan-out handle (as returned by [Forest.Tag]).
// Validation is per argument, left to right: on failure, arguments already
// planted by the same call stay planted.
func (f *Forest) Plant(trees ...Tree) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range trees {
		if t == nil {
			return ErrNilTree
		}

		if fo, ok := t.(*fanout); ok && fo.forest == f {
			return ErrSelfPlant
		}

		f.trees = append(f.trees, t)
	}

	return nil
}

// Uproot removes the first occurrence of each tree from the registry,
// matching by identity.
//
// It fails with [ErrNotPlanted] when a tree is not currently planted.
// Arguments are processed left to right: on failure, arguments already
// uprooted by the same call stay uprooted.
func (f *Forest) Uproot(trees ...Tree) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range trees {
		i := slices.Index(f.trees, t)
		if i < 0 {
			return ErrNotPlanted
		}

		f.trees = slices.Delete(f.trees, i, i+1)
	}

	return nil
}

// UprootAll removes every planted tree. It never fails.
func (f *Forest) UprootAll() {
	f.mu.Lock()
	f.trees = nil
	f.mu.Unlock()
}

// Len returns the number of planted trees, counting duplicates.
func (f *Forest) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.trees)
}

// Tag sets the one-time tag on every planted tree and returns the forest's
// fan-out handle, so tagging and logging chain into one expression:
//
//	forest.Tag("db").Warn("slow query")
//
// Each planted tree consumes the tag on its next level call.
func (f *Forest) Tag(tag string) Tree {
	all := &fanout{forest: f}
	all.SetTag(tag)

	return all
}

// Debug logs a message at Debug level on every planted tree.
func (f *Forest) Debug(msg string, args ...any) {
	(&fanout{forest: f}).Debug(msg, args...)
}

// Info logs a message at Info level on every planted tree.
func (f *Forest) Info(msg string, args ...any) {
	(&fanout{forest: f}).Info(msg, args...)
}

// Warn logs a message at Warn level on every planted tree.
func (f *Forest) Warn(msg string, args ...any) {
	(&fanout{forest: f}).Warn(msg, args...)
}

// Error logs a message at Error level on every planted tree.
func (f *Forest) Error(msg string, args ...any) {
	(&fanout{forest: f}).Error(msg, args...)
}

// snapshot returns a copy of the registry for dispatch, so fan-out never
// holds the lock while trees run.
func (f *Forest) snapshot() []Tree {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return slices.Clone(f.trees)
}

// fanout relays each level call to every tree planted in its forest.
//
// It deliberately bypasses the [SinkTree] pipeline and has no write hook of
// its own: tag consumption and filtering are each planted tree's business,
// performed when that tree's level method runs during fan-out.
type fanout struct {
	forest *Forest
}

// Debug logs a message at Debug level on every planted tree.
func (d *fanout) Debug(msg string, args ...any) {
	for _, t := range d.forest.snapshot() {
		t.Debug(msg, args...)
	}
}

// Info logs a message at Info level on every planted tree.
func (d *fanout) Info(msg string, args ...any) {
	for _, t := range d.forest.snapshot() {
		t.Info(msg, args...)
	}
}

// Warn logs a message at Warn level on every planted tree.
func (d *fanout) Warn(msg string, args ...any) {
	for _, t := range d.forest.snapshot() {
		t.Warn(msg, args...)
	}
}

// Error logs a message at Error level on every planted tree.
func (d *fanout) Error(msg string, args ...any) {
	for _, t := range d.forest.snapshot() {
		t.Error(msg, args...)
	}
}

// SetTag sets the one-time tag on every planted tree.
func (d *fanout) SetTag(tag string) {
	for _, t := range d.forest.snapshot() {
		t.SetTag(tag)
	}
}

// defaultForest backs the package-level functions.
var defaultForest = new(Forest)

// Default returns the process-wide [Forest] used by the package-level
// functions.
func Default() *Forest {
	return defaultForest
}

// Plant appends each tree to the default forest. See [Forest.Plant].
func Plant(trees ...Tree) error {
	return defaultForest.Plant(trees...)
}

// Uproot removes the first occurrence of each tree from the default forest.
// See [Forest.Uproot].
func Uproot(trees ...Tree) error {
	return defaultForest.Uproot(trees...)
}

// UprootAll removes every tree planted in the default forest.
func UprootAll() {
	defaultForest.UprootAll()
}

// Len returns the number of trees planted in the default forest.
func Len() int {
	return defaultForest.Len()
}

// Tag sets the one-time tag on every tree planted in the default forest and
// returns the fan-out handle for chaining. See [Forest.Tag].
func Tag(tag string) Tree {
	return defaultForest.Tag(tag)
}

// Debug logs a message at Debug level on every tree in the default forest.
func Debug(msg string, args ...any) {
	defaultForest.Debug(msg, args...)
}

// Info logs a message at Info level on every tree in the default forest.
func Info(msg string, args ...any) {
	defaultForest.Info(msg, args...)
}

// Warn logs a message at Warn level on every tree in the default forest.
func Warn(msg string, args ...any) {
	defaultForest.Warn(msg, args...)
}

// Error logs a message at Error level on every tree in the default forest.
func Error(msg string, args ...any) {
	defaultForest.Error(msg, args...)
}
