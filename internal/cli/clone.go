package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"repoctl.dev/repoctl/internal/config"
	"repoctl.dev/repoctl/internal/github"
	"repoctl.dev/repoctl/internal/repo"
)

// newCloneCmd creates the clone command
func newCloneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clone <remote-url> <destination>",
		Short: "Clone a remote repository's default branch to a local path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, verbose := globalFlags(cmd)
			splog := newLogger(verbose)
			defer splog.Close()

			remoteURL, dest := args[0], args[1]

			if github.IsGitHubURL(remoteURL) && !github.ValidRepoURL(remoteURL) {
				return fmt.Errorf("invalid repository URL: %s", remoteURL)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			splog.Debug("cloning %s to %s", remoteURL, dest)
			handle, res := repo.Clone(cmd.Context(), remoteURL, repo.Credential(cfg.Token()), dest, cfg.DefaultBranch, dryRun)
			if err := report(splog, res); err != nil {
				return err
			}
			if handle != nil {
				splog.Debug("working copy on branch %s, state %s", handle.Branch, handle.State())
			}
			return nil
		},
	}

	return cmd
}
