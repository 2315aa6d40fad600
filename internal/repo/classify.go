package repo

import (
	"errors"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"

	repoctlerrors "repoctl.dev/repoctl/internal/errors"
)

// classifyRemoteError maps a go-git transport failure onto the operation
// error taxonomy. Non-fast-forward rejections surface only from push, so
// branch is empty for other operations.
func classifyRemoteError(op, branch string, err error) error {
	switch {
	case errors.Is(err, transport.ErrAuthenticationRequired),
		errors.Is(err, transport.ErrAuthorizationFailed):
		return repoctlerrors.NewAuthError(op, err)
	case isNonFastForward(err):
		return repoctlerrors.NewConflictError(branch, err)
	case errors.Is(err, transport.ErrRepositoryNotFound):
		return repoctlerrors.NewNetworkError(op+": repository not found", err)
	}

	// go-git reports some server-side auth rejections only as text.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "authentication") || strings.Contains(msg, "authorization") ||
		strings.Contains(msg, "access denied") {
		return repoctlerrors.NewAuthError(op, err)
	}

	return repoctlerrors.NewNetworkError(op, err)
}

// isNonFastForward detects a push rejected because the remote has moved.
// go-git surfaces per-ref rejection as an error string rather than a
// sentinel, matching the remote's report.
func isNonFastForward(err error) bool {
	return strings.Contains(err.Error(), "non-fast-forward")
}
