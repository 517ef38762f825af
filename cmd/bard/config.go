package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-editable settings, read from a YAML file in the
// user scope. Environment variables act as read-only overrides.
type Config struct {
	// ArchiveURL is the play archive's index page.
	ArchiveURL string `yaml:"archive_url"`

	// CachePath is the SQLite page cache location.
	CachePath string `yaml:"cache_path"`

	// Concurrency limits parallel play harvests.
	Concurrency int `yaml:"concurrency"`

	// RequestsPerSecond throttles fetches per archive host.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// Environment variable names used as overrides.
const (
	EnvArchiveURL = "BARD_ARCHIVE_URL"
	EnvCachePath  = "BARD_DB"
)

// DefaultConfig returns the application defaults.
func DefaultConfig() Config {
	return Config{
		ArchiveURL:        "http://shakespeare.mit.edu",
		CachePath:         filepath.Join(userDir(), "pages.db"),
		Concurrency:       4,
		RequestsPerSecond: 2,
	}
}

// LoadConfig reads the config file at path, layered over the defaults,
// then applies environment overrides. A missing file is not an error; a
// malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return cfg, err
	default:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, err
		}
	}

	if v := os.Getenv(EnvArchiveURL); v != "" {
		cfg.ArchiveURL = v
	}
	if v := os.Getenv(EnvCachePath); v != "" {
		cfg.CachePath = v
	}

	return cfg, nil
}

// DefaultConfigPath locates the user config file.
func DefaultConfigPath() string {
	return filepath.Join(userDir(), "config.yaml")
}

func userDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bard"
	}
	return filepath.Join(home, ".bard")
}
