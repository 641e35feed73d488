package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"uprev.dev/uprev/internal/config"
	"uprev.dev/uprev/internal/sync"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	var outputRoot string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the files a sync would import",
		Long: `Print the target file list: every path tracked by the output repository
that does not match the blacklist, one per line. No files are touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := resolveOutputRoot(outputRoot)
			if err != nil {
				return err
			}

			cfg, err := config.Load(output)
			if err != nil {
				return err
			}

			blacklist, err := sync.NewBlacklist(cfg.Blacklist)
			if err != nil {
				return err
			}

			importer := &sync.Importer{
				OutputRoot: output,
				Blacklist:  blacklist,
				Log:        newSplog(cmd),
			}
			targets, err := importer.TargetFiles()
			if err != nil {
				return err
			}

			for _, path := range targets {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputRoot, "output", "", "Output root; defaults to the enclosing repository root")

	return cmd
}
