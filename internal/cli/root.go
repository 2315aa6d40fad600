// Package cli wires the repoctl commands. It maps each user-facing
// command onto the path-validation, file-writing, and repository
// operation components under a shared dry-run flag, and turns their
// results into log lines and exit codes.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"repoctl.dev/repoctl/internal/config"
	"repoctl.dev/repoctl/internal/operation"
	"repoctl.dev/repoctl/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repoctl",
		Short: "Repoctl manages a local clone of a remote repository",
		Long: `Repoctl manages a local clone of a remote GitHub repository:
cloning it, creating files inside a designated section subdirectory,
and pushing local changes back with a commit message.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().Bool("dry-run", false, "Validate and report what would happen without touching disk or network")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newAddFileCmd())
	rootCmd.AddCommand(newPushCmd())

	return rootCmd
}

// globalFlags reads the persistent flags shared by every command.
func globalFlags(cmd *cobra.Command) (dryRun, verbose bool) {
	dryRun, _ = cmd.Flags().GetBool("dry-run")
	verbose, _ = cmd.Flags().GetBool("verbose")
	return dryRun, verbose
}

// newLogger builds the splog for a command invocation, attaching the
// rotating file log when the config directory is resolvable.
func newLogger(verbose bool) *output.Splog {
	logPath, err := config.LogFilePath()
	if err != nil {
		return output.NewSplog(verbose)
	}
	splog, err := output.NewSplogWithFile(verbose, logPath)
	if err != nil {
		return output.NewSplog(verbose)
	}
	return splog
}

// report logs an operation result and converts a failure into the error
// that selects the non-zero exit code.
func report(splog *output.Splog, res operation.Result) error {
	if !res.Success {
		return res.Err
	}
	if res.DryRun {
		splog.Info("[dry run] %s", res.Message)
	} else {
		splog.Info("%s", res.Message)
	}
	return nil
}
