package repo

import (
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	repoctlerrors "repoctl.dev/repoctl/internal/errors"
	"repoctl.dev/repoctl/internal/operation"
)

// StageAndCommit stages all working-copy changes, untracked files
// included, and commits them with message. A clean working copy yields a
// NothingToCommitError reported as a successful no-op. The handle moves
// to the modified state on success.
func StageAndCommit(h *Handle, message string, dryRun bool) operation.Result {
	if h == nil || h.repo == nil {
		return operation.Fail(repoctlerrors.NewInvalidPathError("", "no working copy attached"))
	}
	if h.state != StateCloned && h.state != StateModified {
		return operation.Fail(fmt.Errorf("cannot commit from state %s", h.state))
	}
	if message == "" {
		return operation.Fail(fmt.Errorf("commit message must not be empty"))
	}

	worktree, err := h.repo.Worktree()
	if err != nil {
		h.state = StateFailed
		return operation.Fail(fmt.Errorf("failed to get worktree: %w", err))
	}

	status, err := worktree.Status()
	if err != nil {
		h.state = StateFailed
		return operation.Fail(fmt.Errorf("failed to get worktree status: %w", err))
	}
	if status.IsClean() {
		return operation.NoOp(
			fmt.Sprintf("nothing to commit in %s", h.Root),
			repoctlerrors.NewNothingToCommitError(h.Root),
		)
	}

	if dryRun {
		return operation.WouldSucceed(fmt.Sprintf("would stage all changes and commit with message %q", message))
	}

	if err := worktree.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		h.state = StateFailed
		return operation.Fail(fmt.Errorf("failed to stage changes: %w", err))
	}

	name, email := h.authorName, h.authorEmail
	if name == "" {
		name = "repoctl"
	}
	if email == "" {
		email = "repoctl@localhost"
	}

	_, err = worktree.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  name,
			Email: email,
			When:  time.Now(),
		},
	})
	if err != nil {
		h.state = StateFailed
		return operation.Fail(fmt.Errorf("failed to commit: %w", err))
	}

	h.state = StateModified
	return operation.Succeed(fmt.Sprintf("committed all changes with message %q", message))
}
