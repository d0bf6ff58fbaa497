package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fsio"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	pathColor  = color.New(color.FgCyan)
	valueColor = color.New(color.FgGreen)
)

// render writes v to the command output in the selected format. Text output
// is produced by text.
func (a *app) render(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	switch a.output {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, fsio.CodeWriteFail, "encode json output")
		}
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, fsio.CodeWriteFail, "encode yaml output")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, fsio.CodeWriteFail, "encode yaml output")
		}
	default:
		text(w)
	}
	return nil
}

// renderError prints err with its code. Structured formats print the
// serialized error response.
func renderError(w io.Writer, format string, err error) {
	resp := errors.ToJSON(err)
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(map[string]interface{}{"error": resp})
	case formatYAML:
		_ = yaml.NewEncoder(w).Encode(map[string]interface{}{"error": resp})
	default:
		_, _ = errorColor.Fprintf(w, "Error [%s]", resp.Code)
		_, _ = fmt.Fprintf(w, ": %s\n", resp.Message)
	}
}
