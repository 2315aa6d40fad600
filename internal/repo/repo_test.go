package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	repoctlerrors "repoctl.dev/repoctl/internal/errors"
	"repoctl.dev/repoctl/testhelpers"
)

func TestClone(t *testing.T) {
	t.Parallel()

	t.Run("clones the default branch", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dest := filepath.Join(t.TempDir(), "wc")

		handle, res := Clone(context.Background(), remote, "", dest, "", false)
		require.True(t, res.Success)
		require.NoError(t, res.Err)
		require.NotNil(t, handle)
		require.Equal(t, StateCloned, handle.State())
		require.Equal(t, "main", handle.Branch)

		_, err := os.Stat(filepath.Join(dest, "README.md"))
		require.NoError(t, err)
	})

	t.Run("fails when the destination already contains a working copy", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		existing, _ := testhelpers.Clone(t, remote)

		handle, res := Clone(context.Background(), remote, "", existing, "", false)
		require.False(t, res.Success)
		require.ErrorIs(t, res.Err, repoctlerrors.ErrAlreadyExists)
		require.Nil(t, handle)
	})

	t.Run("fails when the destination is a file", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dest := filepath.Join(t.TempDir(), "occupied")
		require.NoError(t, os.WriteFile(dest, []byte("x"), 0644))

		_, res := Clone(context.Background(), remote, "", dest, "", false)
		require.False(t, res.Success)
		require.ErrorIs(t, res.Err, repoctlerrors.ErrInvalidPath)
	})

	t.Run("dry run probes the remote without writing", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dest := filepath.Join(t.TempDir(), "wc")

		first, firstRes := Clone(context.Background(), remote, "", dest, "", true)
		second, secondRes := Clone(context.Background(), remote, "", dest, "", true)

		require.Nil(t, first)
		require.Nil(t, second)
		require.True(t, firstRes.Success)
		require.True(t, firstRes.DryRun)
		require.Equal(t, firstRes.Message, secondRes.Message)

		_, err := os.Stat(dest)
		require.True(t, os.IsNotExist(err), "dry run must not create the destination")
	})

	t.Run("dry run fails against a missing remote", func(t *testing.T) {
		t.Parallel()
		dest := filepath.Join(t.TempDir(), "wc")
		missing := filepath.Join(t.TempDir(), "no-such-remote")

		_, res := Clone(context.Background(), missing, "", dest, "", true)
		require.False(t, res.Success)
	})
}

func TestAttach(t *testing.T) {
	t.Parallel()

	t.Run("opens an existing working copy", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dir, _ := testhelpers.Clone(t, remote)

		handle, err := Attach(dir)
		require.NoError(t, err)
		require.Equal(t, "main", handle.Branch)
		require.Equal(t, remote, handle.RemoteURL)
		require.Equal(t, StateCloned, handle.State())
	})

	t.Run("fails on a directory without a repository", func(t *testing.T) {
		t.Parallel()

		_, err := Attach(t.TempDir())
		require.ErrorIs(t, err, repoctlerrors.ErrInvalidPath)
	})
}

func TestStageAndCommit(t *testing.T) {
	t.Parallel()

	t.Run("reports nothing to commit on a clean working copy", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dir, _ := testhelpers.Clone(t, remote)

		handle, err := Attach(dir)
		require.NoError(t, err)

		res := StageAndCommit(handle, "no-op", false)
		require.True(t, res.Success, "nothing to commit is a successful no-op")
		require.ErrorIs(t, res.Err, repoctlerrors.ErrNothingToCommit)
	})

	t.Run("commits untracked files", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dir, gitRepo := testhelpers.Clone(t, remote)

		handle, err := Attach(dir)
		require.NoError(t, err)
		before := testhelpers.Head(t, gitRepo)

		testhelpers.WriteFile(t, dir, "src/utils/helper.ext", "X")
		res := StageAndCommit(handle, "Added helper", false)
		require.True(t, res.Success)
		require.NoError(t, res.Err)
		require.Equal(t, StateModified, handle.State())
		require.NotEqual(t, before, testhelpers.Head(t, gitRepo))
	})

	t.Run("fails on an empty message", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dir, _ := testhelpers.Clone(t, remote)

		handle, err := Attach(dir)
		require.NoError(t, err)

		testhelpers.WriteFile(t, dir, "new.txt", "x")
		res := StageAndCommit(handle, "", false)
		require.False(t, res.Success)
	})

	t.Run("dry run leaves the repository untouched", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dir, gitRepo := testhelpers.Clone(t, remote)

		handle, err := Attach(dir)
		require.NoError(t, err)
		before := testhelpers.Head(t, gitRepo)

		testhelpers.WriteFile(t, dir, "new.txt", "x")
		first := StageAndCommit(handle, "dry", true)
		second := StageAndCommit(handle, "dry", true)

		require.True(t, first.Success)
		require.True(t, first.DryRun)
		require.Equal(t, first.Message, second.Message)
		require.Equal(t, before, testhelpers.Head(t, gitRepo))
	})
}

func TestPush(t *testing.T) {
	t.Parallel()

	t.Run("round trip: add file, commit, push", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dest := filepath.Join(t.TempDir(), "wc")

		handle, res := Clone(context.Background(), remote, "", dest, "", false)
		require.True(t, res.Success)

		testhelpers.WriteFile(t, dest, "src/utils/helper.ext", "X")
		res = StageAndCommit(handle, "Added helper", false)
		require.True(t, res.Success)

		res = Push(context.Background(), handle, "", false)
		require.True(t, res.Success)
		require.NoError(t, res.Err)
		require.Equal(t, StatePushed, handle.State())

		// A fresh clone of the remote sees the new file with exact content
		checkDir, _ := testhelpers.Clone(t, remote)
		data, err := os.ReadFile(filepath.Join(checkDir, "src", "utils", "helper.ext"))
		require.NoError(t, err)
		require.Equal(t, "X", string(data))
	})

	t.Run("clone then commit with zero changes yields nothing to commit, not a conflict", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dest := filepath.Join(t.TempDir(), "wc")

		handle, res := Clone(context.Background(), remote, "", dest, "", false)
		require.True(t, res.Success)

		res = StageAndCommit(handle, "nothing here", false)
		require.ErrorIs(t, res.Err, repoctlerrors.ErrNothingToCommit)
		require.NotErrorIs(t, res.Err, repoctlerrors.ErrConflict)
	})

	t.Run("push with no new commits is a successful no-op", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dest := filepath.Join(t.TempDir(), "wc")

		handle, res := Clone(context.Background(), remote, "", dest, "", false)
		require.True(t, res.Success)

		res = Push(context.Background(), handle, "", false)
		require.True(t, res.Success)
		require.Contains(t, res.Message, "up to date")
	})

	t.Run("diverged remote fails with a conflict and keeps the local commit", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dest := filepath.Join(t.TempDir(), "wc")

		handle, res := Clone(context.Background(), remote, "", dest, "", false)
		require.True(t, res.Success)

		// Remote moves ahead behind our back
		testhelpers.AddRemoteCommit(t, remote, "other.txt", "remote change", "Remote commit")

		testhelpers.WriteFile(t, dest, "local.txt", "local change")
		res = StageAndCommit(handle, "Local commit", false)
		require.True(t, res.Success)

		gitRepo := handle.repo
		localHead := testhelpers.Head(t, gitRepo)

		res = Push(context.Background(), handle, "", false)
		require.False(t, res.Success)
		require.ErrorIs(t, res.Err, repoctlerrors.ErrConflict)
		require.Equal(t, StateFailed, handle.State())

		// The failed push must not roll anything back
		require.Equal(t, localHead, testhelpers.Head(t, gitRepo))
	})

	t.Run("dry run pushes nothing", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dest := filepath.Join(t.TempDir(), "wc")

		handle, res := Clone(context.Background(), remote, "", dest, "", false)
		require.True(t, res.Success)

		testhelpers.WriteFile(t, dest, "new.txt", "x")
		res = StageAndCommit(handle, "Local commit", false)
		require.True(t, res.Success)

		first := Push(context.Background(), handle, "", true)
		second := Push(context.Background(), handle, "", true)
		require.True(t, first.Success)
		require.True(t, first.DryRun)
		require.Equal(t, first.Message, second.Message)

		// The remote did not receive the commit
		checkDir, _ := testhelpers.Clone(t, remote)
		_, err := os.Stat(filepath.Join(checkDir, "new.txt"))
		require.True(t, os.IsNotExist(err))
	})

	t.Run("fails without a remote", func(t *testing.T) {
		t.Parallel()
		remote := testhelpers.NewBareRemote(t)
		dir, gitRepo := testhelpers.Clone(t, remote)
		_, err := gitRepo.Remote("origin")
		require.NoError(t, err)
		require.NoError(t, gitRepo.DeleteRemote("origin"))

		handle, err := Attach(dir)
		require.NoError(t, err)

		res := Push(context.Background(), handle, "", false)
		require.False(t, res.Success)
	})
}

func TestCredentialString(t *testing.T) {
	t.Parallel()

	cred := Credential("ghp_supersecret")
	require.NotContains(t, cred.String(), "supersecret")
}
