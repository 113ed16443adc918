package timber

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for log configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	Level  string
	Format string
	File   string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for log configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewTree] to build a plantable tree.
type Config struct {
	Level  string
	Format string
	File   string
	Flags  Flags
}

// NewConfig returns a new [Config] with default flag names.
// Use [Config.RegisterFlags] to add CLI flags, or set values directly.
func NewConfig() *Config {
	f := Flags{
		Level:  "log-level",
		Format: "log-format",
		File:   "log-config",
	}

	return f.NewConfig()
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, "info",
		fmt.Sprintf("log level, one of: %s", GetAllLevelStrings()))
	flags.StringVar(&c.Format, c.Flags.Format, "text",
		fmt.Sprintf("log format, one of: %s", GetAllFormatStrings()))
	flags.StringVar(&c.File, c.Flags.File, "",
		"YAML file with log configuration (flags take precedence)")
}

// RegisterCompletions registers shell completions for log flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Level,
		cobra.FixedCompletions(GetAllLevelStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Level, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(GetAllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	return nil
}

// fileConfig is the YAML shape accepted by [Config.LoadFile].
type fileConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadFile merges values from the YAML config file named by c.File into c.
// Values set on the command line win; pass the [*pflag.FlagSet] given to
// [Config.RegisterFlags] so changed flags can be detected, or nil to let
// file values always apply. A missing or empty c.File is a no-op.
func (c *Config) LoadFile(flags *pflag.FlagSet) error {
	if c.File == "" {
		return nil
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading log config: %w", err)
	}

	var fc fileConfig

	err = yaml.Unmarshal(data, &fc)
	if err != nil {
		return fmt.Errorf("%w: parsing log config: %w", ErrInvalidArgument, err)
	}

	if fc.Level != "" && (flags == nil || !flags.Changed(c.Flags.Level)) {
		c.Level = fc.Level
	}

	if fc.Format != "" && (flags == nil || !flags.Changed(c.Flags.Format)) {
		c.Format = fc.Format
	}

	return nil
}

// NewTree builds a slog-backed tree that writes to w, using the level and
// format strings stored in c. The level doubles as the tree's filter
// threshold.
func (c *Config) NewTree(w io.Writer) (Tree, error) {
	handler, err := NewHandlerFromStrings(w, c.Level, c.Format)
	if err != nil {
		return nil, err
	}

	return New(NewSlogSink(handler)), nil
}
