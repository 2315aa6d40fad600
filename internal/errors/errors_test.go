package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelMatching(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"invalid path", NewInvalidPathError("../etc", "escapes repository root"), ErrInvalidPath},
		{"already exists", NewAlreadyExistsError("/tmp/dest"), ErrAlreadyExists},
		{"auth", NewAuthError("push", errors.New("401")), ErrAuth},
		{"network", NewNetworkError("clone", errors.New("timeout")), ErrNetwork},
		{"conflict", NewConflictError("main", errors.New("non-fast-forward")), ErrConflict},
		{"file write", NewFileWriteError("/tmp/x", errors.New("permission denied")), ErrFileWrite},
		{"nothing to commit", NewNothingToCommitError("/tmp/repo"), ErrNothingToCommit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tc.err, tc.sentinel)

			// Wrapping must not break matching
			wrapped := fmt.Errorf("operation failed: %w", tc.err)
			require.ErrorIs(t, wrapped, tc.sentinel)
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	require.NotErrorIs(t, NewConflictError("main", nil), ErrNetwork)
	require.NotErrorIs(t, NewNothingToCommitError("/repo"), ErrConflict)
	require.NotErrorIs(t, NewAuthError("push", nil), ErrNetwork)
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	underlying := errors.New("disk full")
	err := NewFileWriteError("/tmp/x", underlying)
	require.ErrorIs(t, err, underlying)

	var fwErr *FileWriteError
	require.ErrorAs(t, error(err), &fwErr)
	require.Equal(t, "/tmp/x", fwErr.Path)
}

func TestAuthErrorNeverMentionsCredential(t *testing.T) {
	t.Parallel()

	token := "ghp_supersecrettoken"
	err := NewAuthError("push", fmt.Errorf("server said no"))
	require.NotContains(t, err.Error(), token)
	require.True(t, strings.Contains(err.Error(), "push"))
}
