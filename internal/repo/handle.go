// Package repo implements repository operations (clone, stage-and-commit,
// push) on top of go-git. Operations are discrete and independently
// retryable; none of them retries on its own. Every mutating operation
// accepts a dry-run flag and short-circuits after its preconditions pass.
package repo

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	repoctlerrors "repoctl.dev/repoctl/internal/errors"
)

// State tracks where a handle sits in its lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateCloned
	StateModified
	StatePushed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateCloned:
		return "cloned"
	case StateModified:
		return "modified"
	case StatePushed:
		return "pushed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Credential is an opaque authentication token for remote operations.
// It is supplied per operation call and never stored on a Handle.
type Credential string

// String keeps the token out of logs and formatted errors.
func (c Credential) String() string {
	return "<redacted>"
}

func (c Credential) auth() transport.AuthMethod {
	if c == "" {
		return nil
	}
	// GitHub accepts any username when the password is a token.
	return &githttp.BasicAuth{
		Username: "x-access-token",
		Password: string(c),
	}
}

// Handle identifies a local working copy: its root path, remote URL, and
// current branch. A Handle is created by a successful Clone or by Attach
// on an existing working copy; the tool never removes one.
type Handle struct {
	Root      string
	RemoteURL string
	Branch    string

	state       State
	repo        *gogit.Repository
	authorName  string
	authorEmail string
}

// State returns the handle's lifecycle state.
func (h *Handle) State() State {
	return h.state
}

// SetAuthor sets the signature used for commits created through this handle.
func (h *Handle) SetAuthor(name, email string) {
	h.authorName = name
	h.authorEmail = email
}

// Attach opens an existing working copy at root. It fails when root is
// not a valid repository, which is the precondition for every commit and
// push operation.
func Attach(root string) (*Handle, error) {
	repository, err := gogit.PlainOpen(root)
	if err != nil {
		return nil, repoctlerrors.NewInvalidPathError(root, "not a git working copy")
	}

	h := &Handle{
		Root:  root,
		state: StateCloned,
		repo:  repository,
	}

	if head, err := repository.Head(); err == nil {
		h.Branch = head.Name().Short()
	}
	if remote, err := repository.Remote(gogit.DefaultRemoteName); err == nil && len(remote.Config().URLs) > 0 {
		h.RemoteURL = remote.Config().URLs[0]
	}

	return h, nil
}

// isWorkingCopy reports whether path already contains a repository.
func isWorkingCopy(path string) bool {
	_, err := gogit.PlainOpen(path)
	return err == nil
}
