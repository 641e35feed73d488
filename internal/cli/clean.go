package cli

import (
	"github.com/spf13/cobra"

	"uprev.dev/uprev/internal/config"
	"uprev.dev/uprev/internal/sync"
)

// newCleanCmd creates the clean command
func newCleanCmd() *cobra.Command {
	var outputRoot string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove prior vendored content from the output tree",
		Long: `Remove every top-level directory of the output tree except the preserved
ones (version control metadata and the tool directory). Files directly in
the root are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog(cmd)

			output, err := resolveOutputRoot(outputRoot)
			if err != nil {
				return err
			}

			cfg, err := config.Load(output)
			if err != nil {
				return err
			}

			cleaner := &sync.Cleaner{
				OutputRoot: output,
				Preserved:  cfg.Preserved,
				Log:        splog,
			}
			return cleaner.Run()
		},
	}

	cmd.Flags().StringVar(&outputRoot, "output", "", "Output root; defaults to the enclosing repository root")

	return cmd
}
