// Package cli wires the uprev commands.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uprev",
		Short: "Uprev refreshes a vendored source tree from an upstream checkout",
		Long: `Uprev refreshes a vendored source tree from an upstream repository checkout.

A full sync runs three stages in order: clean prior vendored content from
the output tree, import the blacklist-filtered set of tracked files from
the upstream checkout, and apply the local patch series on top.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug output")

	// Add subcommands
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newPatchCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
