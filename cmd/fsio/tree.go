package main

import (
	"github.com/spf13/cobra"
)

func (a *app) newMkdirsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdirs PATH",
		Short: "Create a directory and any missing parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fsys.CreateDirectories(args[0])
		},
	}
}

func (a *app) newRmtreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rmtree PATH",
		Short: "Remove a file or a directory and everything below it",
		Long: `Remove a file or a directory and everything below it.

Symbolic links are removed, never followed. The first failure stops the
removal; entries removed before it stay removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fsys.DeleteTree(args[0])
		},
	}
}

func (a *app) newRmdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rmdir PATH",
		Short: "Remove a directory only if it is empty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.fsys.DeleteDirectoryIfEmpty(args[0])
		},
	}
}
