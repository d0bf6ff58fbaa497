package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fsio"
	"github.com/jmgilman/go/fsio/logging"
)

// Output formats accepted by --output.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// app holds the state shared by every subcommand.
type app struct {
	logLevel string
	output   string
	noColor  bool
	jsonLogs bool

	fsys *fsio.FS
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "fsio",
		Short: "Portable filesystem operations",
		Long: `fsio runs the operations of the portable filesystem layer against the
native filesystem.

Examples:
  # Create a directory and all of its parents
  fsio mkdirs /tmp/x/y/z

  # Find every .txt file below two directories
  fsio find --glob '*.txt' /tmp/a /tmp/b

  # Report free space as JSON
  fsio df --output json /tmp`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn",
		"Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", formatText,
		"Output format (text, json, yaml)")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false,
		"Disable colored output")
	cmd.PersistentFlags().BoolVar(&a.jsonLogs, "log-json", false,
		"Write logs as JSON")

	cmd.AddCommand(
		a.newMkdirsCmd(),
		a.newRmtreeCmd(),
		a.newRmdirCmd(),
		a.newFindCmd(),
		a.newDfCmd(),
		a.newResolveCmd(),
		a.newCanonCmd(),
		a.newCatCmd(),
	)
	return cmd
}

// setup validates the global flags and builds the filesystem layer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	switch a.output {
	case formatText, formatJSON, formatYAML:
	default:
		return errors.WithContext(
			errors.Newf(fsio.CodeParam, "unknown output format %q", a.output),
			"accepted", []string{formatText, formatJSON, formatYAML},
		)
	}

	level, err := logging.ParseLogLevel(a.logLevel)
	if err != nil {
		return errors.Wrap(err, fsio.CodeParam, "invalid --log-level")
	}

	if a.noColor {
		color.NoColor = true
	}

	logger := logging.NewLogger(logging.LogConfig{
		Level:  level,
		JSON:   a.jsonLogs,
		Output: cmd.ErrOrStderr(),
	})
	a.fsys = fsio.New(fsio.WithLogger(logger))
	return nil
}

// outputFormat returns the --output value of cmd, falling back to text when
// the flag is missing or invalid.
func outputFormat(cmd *cobra.Command) string {
	f, err := cmd.PersistentFlags().GetString("output")
	if err != nil {
		return formatText
	}
	switch f {
	case formatJSON, formatYAML:
		return f
	default:
		return formatText
	}
}

// printLine writes a line to the command's standard output.
func printLine(cmd *cobra.Command, s string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
}
