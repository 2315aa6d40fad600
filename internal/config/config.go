// Package config provides repoctl configuration management,
// including reading and writing the operator configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configFileName = "config.json"
	logFileName    = "repoctl.log"

	// DefaultBranch is used when neither the config file nor the
	// environment names a branch.
	DefaultBranch = "main"

	defaultAuthorName  = "repoctl"
	defaultAuthorEmail = "repoctl@localhost"
)

// Config represents the operator configuration.
// The token is an opaque credential: it is read here and handed to
// operations per call, never logged or echoed.
type Config struct {
	GitHubToken   string `json:"github_token,omitempty"`
	DefaultBranch string `json:"default_branch,omitempty"`
	AuthorName    string `json:"author_name,omitempty"`
	AuthorEmail   string `json:"author_email,omitempty"`
	LogLevel      string `json:"log_level,omitempty"`
}

// Dir returns the repoctl configuration directory, ~/.repoctl by default.
// REPOCTL_CONFIG_DIR overrides it (used by tests and scripted setups).
func Dir() (string, error) {
	if dir := os.Getenv("REPOCTL_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".repoctl"), nil
}

// Path returns the full path of the configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LogFilePath returns the path of the rotating log file.
func LogFilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

// Load reads the configuration file and applies environment overrides.
// A missing file is not an error; defaults are returned.
func Load() (*Config, error) {
	cfg := &Config{}

	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Environment wins over the file
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.GitHubToken = token
	}
	if branch := os.Getenv("REPOCTL_DEFAULT_BRANCH"); branch != "" {
		cfg.DefaultBranch = branch
	}
	if level := os.Getenv("REPOCTL_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

// Save writes the configuration file, creating the directory if needed.
// The file is written 0600 because it may hold a token.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Token returns the credential, which may be empty for anonymous access.
func (c *Config) Token() string {
	return c.GitHubToken
}

// Branch returns the configured default branch, or "main".
func (c *Config) Branch() string {
	if c.DefaultBranch != "" {
		return c.DefaultBranch
	}
	return DefaultBranch
}

// Author returns the commit signature name and email, with defaults.
func (c *Config) Author() (string, string) {
	name := c.AuthorName
	if name == "" {
		name = defaultAuthorName
	}
	email := c.AuthorEmail
	if email == "" {
		email = defaultAuthorEmail
	}
	return name, email
}
