package timber_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/timber"
)

func TestConfigRegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := timber.NewConfig()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse(nil))
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.Empty(t, cfg.File)

	require.NoError(t, flags.Set("log-level", "debug"))
	assert.Equal(t, "debug", cfg.Level)
}

func TestConfigRegisterCompletions(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		flag string
		want []string
	}{
		"log-level completions": {
			flag: "log-level",
			want: timber.GetAllLevelStrings(),
		},
		"log-format completions": {
			flag: "log-format",
			want: timber.GetAllFormatStrings(),
		},
	}

	cfg := timber.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	err := cfg.RegisterCompletions(cmd)
	require.NoError(t, err)

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			completionFn, ok := cmd.GetFlagCompletionFunc(tc.flag)
			require.True(t, ok)

			values, directive := completionFn(cmd, nil, "")
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
			assert.Equal(t, tc.want, values)
		})
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "log.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestConfigLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("file values apply when flags unchanged", func(t *testing.T) {
		t.Parallel()

		cfg := timber.NewConfig()

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg.RegisterFlags(flags)
		require.NoError(t, flags.Parse(nil))

		cfg.File = writeConfigFile(t, "level: error\nformat: json\n")

		require.NoError(t, cfg.LoadFile(flags))
		assert.Equal(t, "error", cfg.Level)
		assert.Equal(t, "json", cfg.Format)
	})

	t.Run("changed flags win over the file", func(t *testing.T) {
		t.Parallel()

		cfg := timber.NewConfig()

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg.RegisterFlags(flags)
		require.NoError(t, flags.Parse([]string{"--log-level=debug"}))

		cfg.File = writeConfigFile(t, "level: error\nformat: json\n")

		require.NoError(t, cfg.LoadFile(flags))
		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, "json", cfg.Format)
	})

	t.Run("partial file leaves other values alone", func(t *testing.T) {
		t.Parallel()

		cfg := timber.NewConfig()

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg.RegisterFlags(flags)
		require.NoError(t, flags.Parse(nil))

		cfg.File = writeConfigFile(t, "level: warn\n")

		require.NoError(t, cfg.LoadFile(flags))
		assert.Equal(t, "warn", cfg.Level)
		assert.Equal(t, "text", cfg.Format)
	})

	t.Run("no file is a no-op", func(t *testing.T) {
		t.Parallel()

		cfg := timber.NewConfig()
		cfg.Level = "warn"

		require.NoError(t, cfg.LoadFile(nil))
		assert.Equal(t, "warn", cfg.Level)
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()

		cfg := timber.NewConfig()
		cfg.File = filepath.Join(t.TempDir(), "absent.yaml")

		require.Error(t, cfg.LoadFile(nil))
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		t.Parallel()

		cfg := timber.NewConfig()
		cfg.File = writeConfigFile(t, "level: [unclosed\n")

		err := cfg.LoadFile(nil)
		require.Error(t, err)
		require.ErrorIs(t, err, timber.ErrInvalidArgument)
	})
}

func TestConfigNewTree(t *testing.T) {
	t.Parallel()

	t.Run("builds a working tree", func(t *testing.T) {
		t.Parallel()

		cfg := timber.NewConfig()
		cfg.Level = "debug"
		cfg.Format = "json"

		var buf bytes.Buffer

		tree, err := cfg.NewTree(&buf)
		require.NoError(t, err)

		tree.SetTag("cfg")
		tree.Debug("built", "ok", true)

		var logEntry map[string]any

		require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
		assert.Equal(t, "built", logEntry["msg"])
		assert.Equal(t, "cfg", logEntry["tag"])
		assert.Equal(t, true, logEntry["ok"])
	})

	t.Run("level gates the tree", func(t *testing.T) {
		t.Parallel()

		cfg := timber.NewConfig()
		cfg.Level = "warn"
		cfg.Format = "json"

		var buf bytes.Buffer

		tree, err := cfg.NewTree(&buf)
		require.NoError(t, err)

		tree.Info("dropped")
		assert.Empty(t, buf.Bytes())
	})

	t.Run("invalid level fails", func(t *testing.T) {
		t.Parallel()

		cfg := timber.NewConfig()
		cfg.Level = "loud"
		cfg.Format = "json"

		_, err := cfg.NewTree(&bytes.Buffer{})
		require.ErrorIs(t, err, timber.ErrInvalidArgument)
	})

	t.Run("invalid format fails", func(t *testing.T) {
		t.Parallel()

		cfg := timber.NewConfig()
		cfg.Level = "info"
		cfg.Format = "xml"

		_, err := cfg.NewTree(&bytes.Buffer{})
		require.ErrorIs(t, err, timber.ErrInvalidArgument)
	})
}
