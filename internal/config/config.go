// Package config loads optional project configuration from submitcheck.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"submitcheck/internal/naming"
)

// FileName is the config file searched for in the working directory and its
// parents.
const FileName = "submitcheck.toml"

// Config mirrors the submitcheck.toml layout.
type Config struct {
	Filenames FilenamesConfig `toml:"filenames"`
}

// FilenamesConfig overrides the filename convention policy.
type FilenamesConfig struct {
	AssignmentSuffix string `toml:"assignment_suffix"`
	SubmissionSuffix string `toml:"submission_suffix"`
	Strict           *bool  `toml:"strict"`
}

// Policy merges the config over the default naming policy.
func (c Config) Policy() naming.Policy {
	p := naming.DefaultPolicy()
	if c.Filenames.AssignmentSuffix != "" {
		p.AssignmentSuffix = c.Filenames.AssignmentSuffix
	}
	if c.Filenames.SubmissionSuffix != "" {
		p.SubmissionSuffix = c.Filenames.SubmissionSuffix
	}
	if c.Filenames.Strict != nil {
		p.Strict = *c.Filenames.Strict
	}
	return p
}

// Load reads the config at path.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Discover walks up from startDir looking for submitcheck.toml. The second
// return value reports whether a config file was found.
func Discover(startDir string) (Config, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return Config{}, false, fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			cfg, err := Load(candidate)
			if err != nil {
				return Config{}, false, err
			}
			return cfg, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, false, fmt.Errorf("stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Config{}, false, nil
		}
		dir = parent
	}
}
