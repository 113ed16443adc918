package timber_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/timber"
)

func TestSlogSink(t *testing.T) {
	t.Parallel()

	t.Run("tag becomes an attribute", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		tree := timber.New(timber.NewSlogSink(
			timber.NewHandler(&buf, timber.LevelDebug, timber.FormatJSON),
		))

		tree.SetTag("db")
		tree.Warn("slow query", "ms", 12)

		var logEntry map[string]any

		require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
		assert.Equal(t, "slow query", logEntry["msg"])
		assert.Equal(t, "WARN", logEntry["level"])
		assert.Equal(t, "db", logEntry["tag"])
		assert.InEpsilon(t, float64(12), logEntry["ms"], 0.0001)
	})

	t.Run("no tag attribute without tag", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		tree := timber.New(timber.NewSlogSink(
			timber.NewHandler(&buf, timber.LevelDebug, timber.FormatJSON),
		))

		tree.Info("plain")

		var logEntry map[string]any

		require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
		assert.Equal(t, "plain", logEntry["msg"])
		assert.NotContains(t, logEntry, "tag")
	})

	t.Run("handler level gates the tree", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		tree := timber.New(timber.NewSlogSink(
			timber.NewHandler(&buf, timber.LevelWarn, timber.FormatJSON),
		))

		tree.Debug("dropped")
		tree.Info("dropped too")
		assert.Empty(t, buf.Bytes())

		tree.Error("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("loggable mirrors handler enablement", func(t *testing.T) {
		t.Parallel()

		sink := timber.NewSlogSink(
			timber.NewHandler(&bytes.Buffer{}, timber.LevelInfo, timber.FormatJSON),
		)

		assert.False(t, sink.Loggable(timber.LevelDebug, ""))
		assert.True(t, sink.Loggable(timber.LevelInfo, ""))
		assert.True(t, sink.Loggable(timber.LevelError, ""))
	})
}
