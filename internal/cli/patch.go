package cli

import (
	"github.com/spf13/cobra"

	"uprev.dev/uprev/internal/config"
	"uprev.dev/uprev/internal/sync"
)

// newPatchCmd creates the patch command
func newPatchCmd() *cobra.Command {
	var (
		outputRoot string
		patchDir   string
	)

	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Apply the local patch series to the output tree",
		Long: `Apply every *.patch file from the patch directory to the output tree, in
lexicographic filename order, stripping one leading path component. The
first patch that fails to apply aborts the run.`,
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
			if patchDir != "" {
				cfg.PatchDir = patchDir
			}

			patcher := &sync.Patcher{
				OutputRoot: output,
				PatchDir:   cfg.PatchDir,
				Log:        splog,
			}
			return patcher.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&outputRoot, "output", "", "Output root; defaults to the enclosing repository root")
	cmd.Flags().StringVar(&patchDir, "patch-dir", "", "Directory containing the patch series")

	return cmd
}
