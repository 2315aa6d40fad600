package repo

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	repoctlerrors "repoctl.dev/repoctl/internal/errors"
	"repoctl.dev/repoctl/internal/operation"
)

// Push pushes the current branch to origin using the supplied credential.
// A remote that is already up to date is a successful no-op. A rejected
// credential fails with an auth error, a diverged remote with a conflict
// error, and transport problems with a network error; the local commit is
// left intact in every failure case.
func Push(ctx context.Context, h *Handle, cred Credential, dryRun bool) operation.Result {
	if h == nil || h.repo == nil {
		return operation.Fail(repoctlerrors.NewInvalidPathError("", "no working copy attached"))
	}
	if h.state == StateFailed || h.state == StateUninitialized {
		return operation.Fail(fmt.Errorf("cannot push from state %s", h.state))
	}

	if _, err := h.repo.Remote(gogit.DefaultRemoteName); err != nil {
		h.state = StateFailed
		return operation.Fail(fmt.Errorf("working copy has no %s remote: %w", gogit.DefaultRemoteName, err))
	}

	if dryRun {
		return operation.WouldSucceed(fmt.Sprintf("would push branch %s to %s", h.Branch, gogit.DefaultRemoteName))
	}

	err := h.repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: gogit.DefaultRemoteName,
		Auth:       cred.auth(),
	})
	if err != nil {
		if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
			return operation.NoOp("already up to date", err)
		}
		h.state = StateFailed
		return operation.Fail(classifyRemoteError("push", h.Branch, err))
	}

	h.state = StatePushed
	return operation.Succeed(fmt.Sprintf("pushed branch %s to %s", h.Branch, gogit.DefaultRemoteName))
}
