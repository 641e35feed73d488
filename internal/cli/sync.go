package cli

import (
	"github.com/spf13/cobra"

	"uprev.dev/uprev/internal/config"
	"uprev.dev/uprev/internal/sync"
)

// newSyncCmd creates the sync command
func newSyncCmd() *cobra.Command {
	var (
		upstreamRoot string
		outputRoot   string
		patchDir     string
		upstreamRev  string
		commit       bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run the full clean/import/patch pipeline",
		Long: `Run the full pipeline: clean prior vendored content from the output
tree, import the blacklist-filtered set of tracked files from the upstream
checkout, and apply the local patch series.

The output tree is replaced destructively. A failure at any stage aborts
the run; already-completed work is not rolled back and the run can be
repeated after the underlying problem is fixed.`,
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
			if patchDir != "" {
				cfg.PatchDir = patchDir
			}

			blacklist, err := sync.NewBlacklist(cfg.Blacklist)
			if err != nil {
				return err
			}

			syncer := &sync.Syncer{
				UpstreamRoot: upstream,
				OutputRoot:   output,
				PatchDir:     cfg.PatchDir,
				Blacklist:    blacklist,
				Preserved:    cfg.Preserved,
				ExpectedRev:  upstreamRev,
				Commit:       commit,
				Log:          splog,
			}
			return syncer.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&upstreamRoot, "upstream", "", "Root of the local upstream repository checkout (required)")
	cmd.Flags().StringVar(&outputRoot, "output", "", "Output root; defaults to the enclosing repository root")
	cmd.Flags().StringVar(&patchDir, "patch-dir", "", "Directory containing the patch series")
	cmd.Flags().StringVar(&upstreamRev, "upstream-rev", "", "Abort unless the upstream checkout is at this revision")
	cmd.Flags().BoolVar(&commit, "commit", false, "Commit the refreshed tree with a generated message")
	_ = cmd.MarkFlagRequired("upstream")

	return cmd
}
