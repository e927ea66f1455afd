package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/nao1215/rstfy/internal/model"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// UserFile represents the per-user defaults file.
//
//	concurrency: 4
//	judge:
//	  clean: [rime, clean]
//	  test: [rime-results, "{problem}"]
type UserFile struct {
	// Concurrency is the default number of problems evaluated at once.
	Concurrency int `yaml:"concurrency,omitempty"`

	// Judge holds judge commands used when a project declares none.
	Judge model.JudgeConfig `yaml:"judge,omitempty"`
}

// LoadUserFile loads the user defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadUserFile(path string) (*UserFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var uf UserFile
	if err := yaml.Unmarshal(data, &uf); err != nil {
		return nil, err
	}
	return &uf, nil
}

// FindUserFile searches for the user defaults file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for config.yaml in the XDG config directory
//
// Returns the path to the file if found, or empty string if not found.
func FindUserFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	path := filepath.Join(XDGConfigDir(), UserConfigFile)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
