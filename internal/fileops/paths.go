// Package fileops provides section path validation and file creation
// inside a repository working copy.
//
// A "section" is a subdirectory of the repository root designated as the
// allowed target for file creation. Validation guarantees that, after
// normalizing dot-dot and symlinked components, the section still resolves
// to a descendant of the root before anything touches disk.
package fileops

import (
	"os"
	"path/filepath"
	"strings"

	repoctlerrors "repoctl.dev/repoctl/internal/errors"
)

const maxFilenameLength = 255

// Reserved device names on Windows; files with these names are not
// portable and the remote repository may be checked out anywhere.
var reservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// ValidFilename reports whether name is usable as a single path component
// across platforms.
func ValidFilename(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if len(name) > maxFilenameLength {
		return false
	}
	if strings.ContainsAny(name, `<>:"/\|?*`) {
		return false
	}
	base := strings.ToUpper(name)
	if dot := strings.IndexByte(base, '.'); dot >= 0 {
		base = base[:dot]
	}
	_, reserved := reservedNames[base]
	return !reserved
}

// ValidateSection resolves section against repoRoot and returns the
// absolute resolved path. It fails with an InvalidPathError when the
// resolved path is not a descendant of repoRoot or when an existing
// ancestor component is not a directory. It performs no writes.
func ValidateSection(repoRoot, section string) (string, error) {
	rootInfo, err := os.Stat(repoRoot)
	if err != nil {
		return "", repoctlerrors.NewInvalidPathError(repoRoot, "repository root does not exist")
	}
	if !rootInfo.IsDir() {
		return "", repoctlerrors.NewInvalidPathError(repoRoot, "repository root is not a directory")
	}

	rootAbs, err := filepath.Abs(repoRoot)
	if err != nil {
		return "", repoctlerrors.NewInvalidPathError(repoRoot, err.Error())
	}
	rootResolved, err := filepath.EvalSymlinks(rootAbs)
	if err != nil {
		return "", repoctlerrors.NewInvalidPathError(repoRoot, err.Error())
	}

	target := section
	if !filepath.IsAbs(target) {
		target = filepath.Join(rootResolved, section)
	}
	target = filepath.Clean(target)

	// Resolve symlinks over the existing ancestor chain so a link
	// pointing outside the root cannot smuggle the target out.
	resolved, err := resolveExisting(target)
	if err != nil {
		return "", repoctlerrors.NewInvalidPathError(section, err.Error())
	}

	rel, err := filepath.Rel(rootResolved, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", repoctlerrors.NewInvalidPathError(section, "escapes repository root")
	}

	// Every existing component on the way down must be a directory.
	if err := checkAncestors(rootResolved, resolved); err != nil {
		return "", err
	}

	if rel != "." {
		for _, part := range strings.Split(rel, string(filepath.Separator)) {
			if !ValidFilename(part) {
				return "", repoctlerrors.NewInvalidPathError(section, "component "+part+" is not a valid name")
			}
		}
	}

	return resolved, nil
}

// ResolveTarget validates section under repoRoot, validates filename as a
// single component, and returns the absolute path of the file to create.
func ResolveTarget(repoRoot, section, filename string) (string, error) {
	sectionPath, err := ValidateSection(repoRoot, section)
	if err != nil {
		return "", err
	}
	if !ValidFilename(filename) {
		return "", repoctlerrors.NewInvalidPathError(filename, "not a valid filename")
	}
	return filepath.Join(sectionPath, filename), nil
}

// resolveExisting resolves symlinks for the deepest existing ancestor of
// path and rejoins the non-existing remainder lexically.
func resolveExisting(path string) (string, error) {
	existing := path
	var remainder []string
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			break
		}
		remainder = append([]string{filepath.Base(existing)}, remainder...)
		existing = parent
	}

	resolved, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{resolved}, remainder...)...), nil
}

// checkAncestors verifies that every existing path component between root
// and target (inclusive) is a directory.
func checkAncestors(root, target string) error {
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == "." {
		return nil
	}

	current := root
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		current = filepath.Join(current, part)
		info, err := os.Stat(current)
		if os.IsNotExist(err) {
			return nil // nothing deeper exists yet
		}
		if err != nil {
			return repoctlerrors.NewInvalidPathError(current, err.Error())
		}
		if !info.IsDir() {
			return repoctlerrors.NewInvalidPathError(current, "exists but is not a directory")
		}
	}
	return nil
}
