// Package errors provides sentinel errors and custom error types for the repoctl application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrInvalidPath indicates that a path escapes the repository root
	// or passes through a non-directory ancestor
	ErrInvalidPath = errors.New("invalid path")

	// ErrAlreadyExists indicates that a clone destination already contains a working copy
	ErrAlreadyExists = errors.New("destination already contains a repository")

	// ErrAuth indicates that the remote rejected the supplied credential
	ErrAuth = errors.New("authentication failed")

	// ErrNetwork indicates a transport or connectivity failure
	ErrNetwork = errors.New("network failure")

	// ErrConflict indicates a non-fast-forward push rejection
	ErrConflict = errors.New("push conflict")

	// ErrFileWrite indicates a filesystem write failure
	ErrFileWrite = errors.New("file write failed")

	// ErrNothingToCommit indicates that the working copy has no pending changes.
	// It is informational; callers conventionally treat it as a successful no-op.
	ErrNothingToCommit = errors.New("nothing to commit")
)

// InvalidPathError represents a path that fails validation against a repository root
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %s: %s", e.Path, e.Reason)
}

// Is returns true if the target error is ErrInvalidPath
func (e *InvalidPathError) Is(target error) bool {
	return target == ErrInvalidPath
}

// NewInvalidPathError creates a new InvalidPathError
func NewInvalidPathError(path, reason string) *InvalidPathError {
	return &InvalidPathError{Path: path, Reason: reason}
}

// AlreadyExistsError represents a clone destination that is already a working copy
type AlreadyExistsError struct {
	Destination string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("destination %s already contains a repository", e.Destination)
}

// Is returns true if the target error is ErrAlreadyExists
func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(destination string) *AlreadyExistsError {
	return &AlreadyExistsError{Destination: destination}
}

// AuthError represents a rejected credential.
// It never records the credential itself.
type AuthError struct {
	Operation string
	Err       error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed during %s: check your access token", e.Operation)
}

// Is returns true if the target error is ErrAuth
func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError
func NewAuthError(operation string, err error) *AuthError {
	return &AuthError{Operation: operation, Err: err}
}

// NetworkError represents a transport or connectivity failure
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network failure during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("network failure during %s", e.Operation)
}

// Is returns true if the target error is ErrNetwork
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError
func NewNetworkError(operation string, err error) *NetworkError {
	return &NetworkError{Operation: operation, Err: err}
}

// ConflictError represents a push rejected because the remote has diverged
type ConflictError struct {
	Branch string
	Err    error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("push of %s rejected: remote has diverged (non-fast-forward)", e.Branch)
}

// Is returns true if the target error is ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// NewConflictError creates a new ConflictError
func NewConflictError(branch string, err error) *ConflictError {
	return &ConflictError{Branch: branch, Err: err}
}

// FileWriteError represents a filesystem write failure.
// It carries the underlying filesystem error for diagnostics.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

// Is returns true if the target error is ErrFileWrite
func (e *FileWriteError) Is(target error) bool {
	return target == ErrFileWrite
}

func (e *FileWriteError) Unwrap() error {
	return e.Err
}

// NewFileWriteError creates a new FileWriteError
func NewFileWriteError(path string, err error) *FileWriteError {
	return &FileWriteError{Path: path, Err: err}
}

// NothingToCommitError represents a commit attempt on a clean working copy
type NothingToCommitError struct {
	Path string
}

func (e *NothingToCommitError) Error() string {
	return fmt.Sprintf("nothing to commit in %s", e.Path)
}

// Is returns true if the target error is ErrNothingToCommit
func (e *NothingToCommitError) Is(target error) bool {
	return target == ErrNothingToCommit
}

// NewNothingToCommitError creates a new NothingToCommitError
func NewNothingToCommitError(path string) *NothingToCommitError {
	return &NothingToCommitError{Path: path}
}
