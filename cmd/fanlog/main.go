// Command fanlog reads lines from standard input and fans each one out to a
// set of log trees: a styled console tree, plus an optional structured file
// tree.
//
// # Usage
//
//	some-process | fanlog [flags]
//
// # Flags
//
//	--as string          level to dispatch lines at (default "info")
//	--tag string         one-time tag applied to the first line
//	--file string        also append structured entries to this file
//	--log-level string   minimum level trees accept (default "info")
//	--log-format string  file tree format (default "text"; falls back to
//	                     "logfmt" when stdout is not a terminal)
//	--log-config string  YAML file with log configuration
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/timber"
)

func main() {
	cfg := timber.NewConfig()

	var (
		as       string
		tag      string
		filePath string
	)

	rootCmd := &cobra.Command{
		Use:   "fanlog [flags]",
		Short: "Fan stdin lines out to log trees",
		Long: `fanlog turns a plain stream of lines into leveled log output. Every line
read from stdin is dispatched to a console tree and, with --file, to a
structured file tree, demonstrating one input fanning out to several sinks.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cfg, cmd, as, tag, filePath)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().StringVar(&as, "as", "info", "level to dispatch lines at")
	rootCmd.Flags().StringVar(&tag, "tag", "", "one-time tag applied to the first line")
	rootCmd.Flags().StringVar(&filePath, "file", "", "also append structured entries to this file")

	completionErr := cfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *timber.Config, cmd *cobra.Command, as, tag, filePath string) error {
	err := cfg.LoadFile(cmd.Flags())
	if err != nil {
		return err
	}

	// Pretty text only makes sense on a terminal; fall back to logfmt when
	// piped, unless a format was chosen explicitly.
	if cfg.Format == string(timber.FormatText) &&
		!cmd.Flags().Changed(cfg.Flags.Format) &&
		!term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Format = string(timber.FormatLogfmt)
	}

	level, err := timber.ParseLevel(as)
	if err != nil {
		return fmt.Errorf("--as: %w", err)
	}

	minLevel, err := timber.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("--%s: %w", cfg.Flags.Level, err)
	}

	forest := new(timber.Forest)

	console := timber.New(timber.NewConsole(timber.WithMinLevel(minLevel)))

	err = forest.Plant(console)
	if err != nil {
		return err
	}

	if filePath != "" {
		f, openErr := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) //nolint:gosec // Output path from CLI flag is expected.
		if openErr != nil {
			return fmt.Errorf("opening log file: %w", openErr)
		}
		defer f.Close() //nolint:errcheck // Best-effort close on exit.

		fileTree, treeErr := cfg.NewTree(f)
		if treeErr != nil {
			return treeErr
		}

		err = forest.Plant(fileTree)
		if err != nil {
			return err
		}
	}

	first := true

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if first && tag != "" {
			forest.Tag(tag)
		}

		first = false

		dispatch(forest, level, scanner.Text())
	}

	err = scanner.Err()
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	return nil
}

// dispatch selects the forest level method matching level.
func dispatch(forest *timber.Forest, level timber.Level, line string) {
	switch level {
	case timber.LevelDebug:
		forest.Debug(line)
	case timber.LevelInfo:
		forest.Info(line)
	case timber.LevelWarn:
		forest.Warn(line)
	case timber.LevelError:
		forest.Error(line)
	}
}
