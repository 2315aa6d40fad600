package fileops

import (
	"fmt"
	"os"
	"path/filepath"

	repoctlerrors "repoctl.dev/repoctl/internal/errors"
	"repoctl.dev/repoctl/internal/operation"
)

// Write creates or overwrites the file at resolvedPath with content,
// creating missing intermediate directories. An existing file is replaced
// without prompting. On a dry run it performs directory and type checks
// only and reports what would happen.
func Write(resolvedPath string, content []byte, dryRun bool) operation.Result {
	parent := filepath.Dir(resolvedPath)

	// The target itself must not be an existing directory.
	if info, err := os.Stat(resolvedPath); err == nil && info.IsDir() {
		return operation.Fail(repoctlerrors.NewInvalidPathError(resolvedPath, "exists but is not a file"))
	}

	if err := checkWritableChain(parent); err != nil {
		return operation.Fail(err)
	}

	exists := false
	if _, err := os.Stat(resolvedPath); err == nil {
		exists = true
	}

	if dryRun {
		if exists {
			return operation.WouldSucceed(fmt.Sprintf("would overwrite file %s (%d bytes)", resolvedPath, len(content)))
		}
		return operation.WouldSucceed(fmt.Sprintf("would create file %s (%d bytes)", resolvedPath, len(content)))
	}

	if err := os.MkdirAll(parent, 0755); err != nil {
		return operation.Fail(repoctlerrors.NewFileWriteError(parent, err))
	}

	if err := os.WriteFile(resolvedPath, content, 0644); err != nil {
		return operation.Fail(repoctlerrors.NewFileWriteError(resolvedPath, err))
	}

	if exists {
		return operation.Succeed(fmt.Sprintf("overwrote file %s (%d bytes)", resolvedPath, len(content)))
	}
	return operation.Succeed(fmt.Sprintf("created file %s (%d bytes)", resolvedPath, len(content)))
}

// checkWritableChain verifies that the existing portion of the directory
// chain leading to parent consists of directories, without creating
// anything. Missing components are fine; MkdirAll handles them later.
func checkWritableChain(parent string) error {
	current := parent
	for {
		info, err := os.Stat(current)
		if err == nil {
			if !info.IsDir() {
				return repoctlerrors.NewInvalidPathError(current, "exists but is not a directory")
			}
			return nil
		}
		if !os.IsNotExist(err) {
			return repoctlerrors.NewFileWriteError(current, err)
		}
		next := filepath.Dir(current)
		if next == current {
			return nil
		}
		current = next
	}
}
