// Package testhelpers provides Git repository fixtures for tests.
// Remotes are plain local bare repositories, so repository-operation
// tests exercise real clone/commit/push mechanics without any network.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

const (
	authorName  = "Test User"
	authorEmail = "test@example.com"
)

func signature() *object.Signature {
	return &object.Signature{
		Name:  authorName,
		Email: authorEmail,
		When:  time.Now(),
	}
}

// NewBareRemote creates a bare repository seeded with an initial commit
// on main and returns its path, usable directly as a clone URL.
func NewBareRemote(t *testing.T) string {
	t.Helper()

	bareDir := t.TempDir()
	_, err := gogit.PlainInitWithOptions(bareDir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: plumbing.Main},
		Bare:        true,
	})
	require.NoError(t, err)

	seedDir := t.TempDir()
	seed, err := gogit.PlainInitWithOptions(seedDir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{DefaultBranch: plumbing.Main},
	})
	require.NoError(t, err)

	WriteFile(t, seedDir, "README.md", "# test repository\n")
	CommitAll(t, seed, "Initial commit")

	_, err = seed.CreateRemote(&gitconfig.RemoteConfig{
		Name: gogit.DefaultRemoteName,
		URLs: []string{bareDir},
	})
	require.NoError(t, err)
	require.NoError(t, seed.Push(&gogit.PushOptions{RemoteName: gogit.DefaultRemoteName}))

	return bareDir
}

// Clone makes a working copy of the bare remote in a fresh temp dir.
func Clone(t *testing.T, remotePath string) (string, *gogit.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainClone(dir, false, &gogit.CloneOptions{URL: remotePath})
	require.NoError(t, err)
	return dir, repo
}

// AddRemoteCommit lands an extra commit on the remote's main branch from
// a scratch clone. Used to make a previously cloned working copy stale.
func AddRemoteCommit(t *testing.T, remotePath, name, content, message string) {
	t.Helper()

	dir, repo := Clone(t, remotePath)
	WriteFile(t, dir, name, content)
	CommitAll(t, repo, message)
	require.NoError(t, repo.Push(&gogit.PushOptions{RemoteName: gogit.DefaultRemoteName}))
}

// CommitAll stages everything in the working copy and commits it.
func CommitAll(t *testing.T, repo *gogit.Repository, message string) plumbing.Hash {
	t.Helper()

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.AddWithOptions(&gogit.AddOptions{All: true}))

	hash, err := wt.Commit(message, &gogit.CommitOptions{Author: signature()})
	require.NoError(t, err)
	return hash
}

// WriteFile writes content under dir, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// Head returns the hash the repository's HEAD points at.
func Head(t *testing.T, repo *gogit.Repository) plumbing.Hash {
	t.Helper()

	ref, err := repo.Head()
	require.NoError(t, err)
	return ref.Hash()
}
