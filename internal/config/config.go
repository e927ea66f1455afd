package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/nao1215/rstfy/internal/model"
)

// Default configuration values.
const (
	// DefaultProjectDir is where target resolution starts.
	DefaultProjectDir = "."

	// DefaultConcurrency is the number of problems evaluated at once.
	// Judge engines typically compile and run every solution of a problem,
	// so a moderate value keeps the machine responsive.
	DefaultConcurrency = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "rstfy"

	// UserConfigFile is the file name of the per-user defaults file.
	UserConfigFile = "config.yaml"
)

// Config holds all command-level options for rstfy.
// It is populated from CLI flags and the user defaults file and passed
// through the application rather than kept in global state.
type Config struct {
	// ProjectDir is the directory target resolution starts from.
	// The nearest PROJECT.yaml or PROBLEM.yaml above it decides the target.
	ProjectDir string

	// Concurrency is the maximum number of problems evaluated at once.
	Concurrency int

	// Verbose enables debug-level logging.
	Verbose bool

	// JSONLog switches diagnostic logging to JSON.
	JSONLog bool

	// Output overrides the report path declared by the project.
	// Empty means use the project's rstfy path.
	Output string

	// UserConfigPath is the path of the user defaults file.
	// Empty means search the XDG config directory.
	UserConfigPath string

	// Judge holds default judge commands, used when the project declares none.
	Judge model.JudgeConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		ProjectDir:  DefaultProjectDir,
		Concurrency: DefaultConcurrency,
	}
}

// XDGConfigDir returns the XDG config directory for rstfy.
// On Linux: ~/.config/rstfy
// On macOS: ~/Library/Application Support/rstfy
// On Windows: %APPDATA%\rstfy
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ApplyUserFile fills in values from the user defaults file.
// Values already differing from the defaults are kept, so flags win.
func (c *Config) ApplyUserFile(uf *UserFile) {
	if uf == nil {
		return
	}
	if uf.Concurrency > 0 && c.Concurrency == DefaultConcurrency {
		c.Concurrency = uf.Concurrency
	}
	if c.Judge.IsZero() {
		c.Judge = uf.Judge
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.ProjectDir == "" {
		return ErrNoProjectDir
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.Output != "" && (strings.HasSuffix(c.Output, "/") || strings.HasSuffix(c.Output, string(filepath.Separator))) {
		return ErrInvalidOutput
	}

	return nil
}
