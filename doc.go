// Package timber is a minimal logging facade: a leveled log call fans out to
// every planted [Tree], and trees decide what to do with it.
//
// Call sites say "log this at level X" through the package-level functions
// ([Debug], [Info], [Warn], [Error]) or through an instantiable [Forest].
// Destinations and formatting are supplied by trees planted at startup:
//
//	timber.Plant(timber.New(timber.NewConsole()))
//
//	timber.Info("server started", "addr", addr)
//
// A minimal tree only needs a write hook. Implement [Sink] and wrap it with
// [New], which supplies the tag and filter pipeline:
//
//	type collector struct{}
//
//	func (collector) Log(level timber.Level, tag, msg string, args ...any) {
//	    // ship it somewhere
//	}
//
//	timber.Plant(timber.New(collector{}))
//
// Sinks that also implement [Filter] can veto individual calls; a sink
// without it receives everything.
//
// # One-time tags
//
// Each tree carries a single-slot tag that is consumed by its next level
// call. [Tag] sets it on every planted tree and returns the fan-out handle,
// so tagging and logging chain into one expression:
//
//	timber.Tag("db").Warn("slow query", "ms", elapsed)
//	timber.Warn("untagged again")
//
// # Forests
//
// The package-level functions operate on a process-wide default [Forest].
// Tests and libraries that should not touch global state create their own:
//
//	var forest timber.Forest
//
//	err := forest.Plant(tree)
//	forest.Error("boom")
//
// # Included sinks
//
// [Console] writes styled human-readable lines, [SlogSink] bridges to any
// [log/slog.Handler] built by [NewHandler], and [Publisher] fans structured
// [Entry] values out to channel subscribers, which is useful for feeding
// logs into a TUI or test harness. [Config] wires level and format selection
// to CLI flags via [github.com/spf13/pflag] with shell completions via
// [github.com/spf13/cobra], and optionally merges a YAML config file.
package timber
