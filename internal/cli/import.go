package cli

import (
	"github.com/spf13/cobra"

	"uprev.dev/uprev/internal/config"
	"uprev.dev/uprev/internal/sync"
)

// newImportCmd creates the import command
func newImportCmd() *cobra.Command {
	var (
		upstreamRoot string
		outputRoot   string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the filtered file set from the upstream checkout",
		Long: `Copy every file tracked by the output repository that does not match the
blacklist from the upstream checkout into the output tree, preserving
content, permission bits and modification times.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog(cmd)

			upstream, err := resolveUpstreamRoot(upstreamRoot)
			if err != nil {
				return err
			}
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
				UpstreamRoot: upstream,
				OutputRoot:   output,
				Blacklist:    blacklist,
				Log:          splog,
			}
			return importer.Run()
		},
	}

	cmd.Flags().StringVar(&upstreamRoot, "upstream", "", "Root of the local upstream repository checkout (required)")
	cmd.Flags().StringVar(&outputRoot, "output", "", "Output root; defaults to the enclosing repository root")
	_ = cmd.MarkFlagRequired("upstream")

	return cmd
}
