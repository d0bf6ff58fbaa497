package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fsio"
)

// spaceReport is the df output.
type spaceReport struct {
	Path  string `json:"path" yaml:"path"`
	Free  uint64 `json:"free" yaml:"free"`
	Total uint64 `json:"total" yaml:"total"`
	Used  uint64 `json:"used" yaml:"used"`
}

func (a *app) newDfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "df PATH",
		Short: "Report free and total space of the filesystem holding PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			free, total, err := a.fsys.FreeSpaceForPath(args[0])
			if err != nil {
				return err
			}

			r := spaceReport{Path: args[0], Free: free, Total: total, Used: total - free}
			return a.render(cmd, r, func(w io.Writer) {
				_, _ = pathColor.Fprint(w, r.Path)
				_, _ = fmt.Fprint(w, "  free ")
				_, _ = valueColor.Fprint(w, humanBytes(r.Free))
				_, _ = fmt.Fprintf(w, "  total %s  used %.1f%%\n", humanBytes(r.Total), percent(r.Used, r.Total))
			})
		},
	}
}

func (a *app) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve PATH",
		Short: "Print PATH with every symbolic link replaced by its target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := a.fsys.ResolveLinks(args[0])
			if err != nil {
				return err
			}
			printLine(cmd, resolved)
			return nil
		},
	}
}

func (a *app) newCanonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canon PATH",
		Short: "Print the absolute canonical form of PATH without touching the filesystem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printLine(cmd, a.fsys.MakeAbsolute(args[0]))
			return nil
		},
	}
}

func (a *app) newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat PATH",
		Short: "Write the contents of a file to standard output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.fsys.ReadFileIntoBuffer(args[0])
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return errors.Wrap(err, fsio.CodeWriteFail, "write output")
			}
			return nil
		},
	}
}

// humanBytes formats n with a binary unit suffix.
func humanBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func percent(part, whole uint64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
