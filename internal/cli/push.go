package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"repoctl.dev/repoctl/internal/config"
	repoctlerrors "repoctl.dev/repoctl/internal/errors"
	"repoctl.dev/repoctl/internal/repo"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push <repo-root> <commit-message>",
		Short: "Stage all changes, commit with a message, and push to the remote",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, verbose := globalFlags(cmd)
			splog := newLogger(verbose)
			defer splog.Close()

			repoRoot, message := args[0], args[1]

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			handle, err := repo.Attach(repoRoot)
			if err != nil {
				return err
			}
			handle.SetAuthor(cfg.Author())

			res := repo.StageAndCommit(handle, message, dryRun)
			if err := report(splog, res); err != nil {
				return err
			}
			if errors.Is(res.Err, repoctlerrors.ErrNothingToCommit) {
				// Nothing new locally; skip the push entirely.
				return nil
			}

			return report(splog, repo.Push(cmd.Context(), handle, repo.Credential(cfg.Token()), dryRun))
		},
	}

	return cmd
}
