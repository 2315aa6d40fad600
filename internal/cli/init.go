package cli

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"repoctl.dev/repoctl/internal/config"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create the repoctl configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, verbose := globalFlags(cmd)
			splog := newLogger(verbose)
			defer splog.Close()

			path, err := config.Path()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil {
				overwrite := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("Configuration file already exists at %s. Overwrite?", path),
				}
				if err := survey.AskOne(prompt, &overwrite); err != nil {
					return fmt.Errorf("canceled")
				}
				if !overwrite {
					splog.Info("Configuration initialization cancelled.")
					return nil
				}
			}

			cfg := &config.Config{DefaultBranch: config.DefaultBranch}

			token := ""
			tokenPrompt := &survey.Password{
				Message: "GitHub personal access token (leave empty to rely on GITHUB_TOKEN)",
			}
			if err := survey.AskOne(tokenPrompt, &token); err != nil {
				return fmt.Errorf("canceled")
			}
			cfg.GitHubToken = token

			branch := ""
			branchPrompt := &survey.Input{
				Message: "Default branch name",
				Default: config.DefaultBranch,
			}
			if err := survey.AskOne(branchPrompt, &branch); err != nil {
				return fmt.Errorf("canceled")
			}
			if branch != "" {
				cfg.DefaultBranch = branch
			}

			if err := cfg.Save(); err != nil {
				return err
			}

			splog.Info("Configuration initialized at %s", path)
			if token == "" {
				splog.Warn("No token provided; set GITHUB_TOKEN before pushing to a private remote.")
			}
			return nil
		},
	}

	return cmd
}
