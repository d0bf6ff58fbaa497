// Command fsio exercises the portable filesystem layer from the shell.
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		renderError(cmd.ErrOrStderr(), outputFormat(cmd), err)
		os.Exit(1)
	}
}
