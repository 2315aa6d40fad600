package cli

import (
	"github.com/spf13/cobra"

	"repoctl.dev/repoctl/internal/fileops"
)

// newAddFileCmd creates the add-file command
func newAddFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-file <repo-root> <section> <filename> [content]",
		Short: "Create a file inside a section of the repository",
		Long: `Create a file inside a section (an allowed subdirectory) of the
repository working copy. The section path is validated against the
repository root before anything is written: it must resolve, after
normalization, to a descendant of the root. Missing intermediate
directories are created; an existing file is overwritten.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, verbose := globalFlags(cmd)
			splog := newLogger(verbose)
			defer splog.Close()

			repoRoot, section, filename := args[0], args[1], args[2]
			content := ""
			if len(args) == 4 {
				content = args[3]
			}

			target, err := fileops.ResolveTarget(repoRoot, section, filename)
			if err != nil {
				return err
			}
			splog.Debug("resolved target %s", target)

			return report(splog, fileops.Write(target, []byte(content), dryRun))
		},
	}

	return cmd
}
