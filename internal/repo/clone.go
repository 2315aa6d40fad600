package repo

import (
	"context"
	"errors"
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"

	repoctlerrors "repoctl.dev/repoctl/internal/errors"
	"repoctl.dev/repoctl/internal/github"
	"repoctl.dev/repoctl/internal/operation"
)

// Clone performs a full clone of remoteURL into dest. When branch is
// non-empty it is requested explicitly; otherwise the remote HEAD decides.
// The destination must not already contain a working copy. On a dry run
// the remote is probed for existence and credential acceptance but
// nothing is written to disk, so the handle stays uninitialized.
func Clone(ctx context.Context, remoteURL string, cred Credential, dest, branch string, dryRun bool) (*Handle, operation.Result) {
	if isWorkingCopy(dest) {
		return nil, operation.Fail(repoctlerrors.NewAlreadyExistsError(dest))
	}
	if info, err := os.Stat(dest); err == nil && !info.IsDir() {
		return nil, operation.Fail(repoctlerrors.NewInvalidPathError(dest, "exists but is not a directory"))
	}

	if dryRun {
		if err := probeRemote(ctx, remoteURL, cred); err != nil {
			return nil, operation.Fail(err)
		}
		return nil, operation.WouldSucceed(fmt.Sprintf("would clone %s to %s", remoteURL, dest))
	}

	opts := &gogit.CloneOptions{
		URL:  remoteURL,
		Auth: cred.auth(),
	}
	if branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(branch)
	}

	repository, err := gogit.PlainCloneContext(ctx, dest, false, opts)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
			return nil, operation.Fail(repoctlerrors.NewAlreadyExistsError(dest))
		}
		return nil, operation.Fail(classifyRemoteError("clone", "", err))
	}

	h := &Handle{
		Root:      dest,
		RemoteURL: remoteURL,
		state:     StateCloned,
		repo:      repository,
	}
	if head, err := repository.Head(); err == nil {
		h.Branch = head.Name().Short()
	}

	return h, operation.Succeed(fmt.Sprintf("cloned %s to %s", remoteURL, dest))
}

// probeRemote checks that the remote exists and accepts the credential.
// GitHub URLs go through the hosting API; anything else gets an
// advertised-refs listing, the equivalent of git ls-remote.
func probeRemote(ctx context.Context, remoteURL string, cred Credential) error {
	if github.IsGitHubURL(remoteURL) {
		return github.CheckRemote(ctx, remoteURL, string(cred))
	}

	remote := gogit.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: gogit.DefaultRemoteName,
		URLs: []string{remoteURL},
	})
	if _, err := remote.ListContext(ctx, &gogit.ListOptions{Auth: cred.auth()}); err != nil {
		return classifyRemoteError("clone", "", err)
	}
	return nil
}
