package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fsio"
	"github.com/jmgilman/go/fsio/match"
)

type findOptions struct {
	regex   bool
	glob    bool
	extglob bool
	one     bool
}

// compiled is implemented by matchers that report a compile error.
type compiled interface {
	match.Matcher
	Err() error
}

func (a *app) newFindCmd() *cobra.Command {
	var opts findOptions

	cmd := &cobra.Command{
		Use:   "find PATTERN DIR...",
		Short: "Search directories recursively for matching file names",
		Long: `Search directories recursively for non-directory entries whose name
matches PATTERN. Hidden entries are skipped.

The pattern is a simple glob ('*' and '?') by default. Use --regex for a
regular expression or --extglob for full shell glob syntax.

Examples:
  fsio find '*.txt' /tmp/t
  fsio find --regex '^report-[0-9]+' --one /var/log /tmp`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFind(cmd, opts, args[0], args[1:])
		},
	}

	cmd.Flags().BoolVar(&opts.regex, "regex", false, "Treat PATTERN as a regular expression")
	cmd.Flags().BoolVar(&opts.glob, "glob", false, "Treat PATTERN as a simple glob (default)")
	cmd.Flags().BoolVar(&opts.extglob, "extglob", false, "Treat PATTERN as a shell glob")
	cmd.Flags().BoolVar(&opts.one, "one", false, "Stop at the first match")
	cmd.MarkFlagsMutuallyExclusive("regex", "glob", "extglob")

	return cmd
}

func (a *app) runFind(cmd *cobra.Command, opts findOptions, pattern string, dirs []string) error {
	logger := a.fsys.Logger()

	var m compiled
	switch {
	case opts.regex:
		m = match.NewRegex(pattern, logger)
	case opts.extglob:
		m = match.NewExtendedGlob(pattern, logger)
	default:
		m = match.NewGlob(pattern, logger)
	}
	if err := m.Err(); err != nil {
		return errors.WrapWithContext(err, fsio.CodeParam, "invalid pattern", map[string]interface{}{
			"pattern": pattern,
		})
	}

	found := a.fsys.FindInPaths(m, dirs, opts.one)
	if found == nil {
		found = []string{}
	}

	return a.render(cmd, found, func(w io.Writer) {
		for _, p := range found {
			_, _ = pathColor.Fprintln(w, p)
		}
	})
}
