// Package github validates GitHub repository URLs and probes the hosting
// API for repository existence and credential acceptance. The probe is the
// network half of a dry-run clone: it proves the remote is reachable
// without writing anything to disk.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	repoctlerrors "repoctl.dev/repoctl/internal/errors"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ValidRepoURL reports whether raw looks like a GitHub repository URL
// (https://github.com/<owner>/<name>, optionally with a .git suffix).
func ValidRepoURL(raw string) bool {
	_, _, err := ParseOwnerRepo(raw)
	return err == nil
}

// IsGitHubURL reports whether raw points at github.com at all.
func IsGitHubURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	return host == "github.com" || host == "www.github.com"
}

// ParseOwnerRepo extracts the owner and repository name from a GitHub URL.
func ParseOwnerRepo(raw string) (string, string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("not a parseable URL: %s", raw)
	}

	host := strings.ToLower(parsed.Hostname())
	if host != "github.com" && host != "www.github.com" {
		return "", "", fmt.Errorf("not a github.com URL: %s", raw)
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("URL %s is missing the owner or repository name", raw)
	}

	owner, name := parts[0], strings.TrimSuffix(parts[1], ".git")
	if owner == "" || name == "" || !namePattern.MatchString(owner) || !namePattern.MatchString(name) {
		return "", "", fmt.Errorf("URL %s has an invalid owner or repository name", raw)
	}

	return owner, name, nil
}

// NewClient builds a GitHub API client, authenticated when token is non-empty.
func NewClient(ctx context.Context, token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return github.NewClient(tc)
}

// CheckRemote verifies that the repository behind rawURL exists and that
// the credential is accepted. Failures map onto the operation error
// taxonomy: rejected credential is an auth failure, everything else
// (including a missing repository) is a network-level failure.
func CheckRemote(ctx context.Context, rawURL, token string) error {
	owner, name, err := ParseOwnerRepo(rawURL)
	if err != nil {
		return err
	}

	client := NewClient(ctx, token)
	_, resp, err := client.Repositories.Get(ctx, owner, name)
	if err == nil {
		return nil
	}

	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		switch apiErr.Response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return repoctlerrors.NewAuthError("clone", err)
		case http.StatusNotFound:
			return repoctlerrors.NewNetworkError("clone: repository not found", err)
		}
	}
	if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		return repoctlerrors.NewAuthError("clone", err)
	}
	return repoctlerrors.NewNetworkError("clone", err)
}
