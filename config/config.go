package config

import (
	"os"
	"path/filepath"

	"github.com/mkarren/codeforge/errors"
	"gopkg.in/yaml.v3"
)

// FilesystemAccess restricts what the agent may see and touch inside a
// project. Patterns are doublestar globs matched against project-relative
// paths.
type FilesystemAccess struct {
	Hidden   []string `yaml:"hidden"`
	ReadOnly []string `yaml:"read_only"`
}

// Context controls how much of the project is included in the prompt sent to
// the model.
type Context struct {
	MaxFiles    int   `yaml:"max_files"`
	MaxFileSize int64 `yaml:"max_file_bytes"`
}

type Config struct {
	LLMClient        string           `yaml:"llm"`
	Model            string           `yaml:"model"`
	Temperature      float64          `yaml:"temperature"`
	WorkspacePath    string           `yaml:"workspace_path"`
	FilesystemAccess FilesystemAccess `yaml:"filesystem_access"`
	Context          Context          `yaml:"context"`
}

const (
	defaultModel       = "gemini-2.5-pro-preview-03-25"
	defaultTemperature = 0.7
	defaultMaxFiles    = 10
	defaultMaxFileSize = 10000
)

// LoadConfig loads configuration from the user's home directory and the
// current working directory, with the latter taking precedence.
func LoadConfig() (*Config, error) {
	cfg := defaults()

	// Load user-level config first
	home, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(home, ".codeforge", "config.yaml")
		if _, err := os.Stat(userConfigPath); err == nil {
			if err := loadFromFile(userConfigPath, cfg); err != nil {
				return nil, errors.Wrapf(err, "error loading user config")
			}
		}
	}

	// Load project-level config, overriding user-level
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrapf(err, "could not get working directory")
	}
	projectConfigPath := filepath.Join(wd, ".codeforge", "config.yaml")
	if _, err := os.Stat(projectConfigPath); err == nil {
		if err := loadFromFile(projectConfigPath, cfg); err != nil {
			return nil, errors.Wrapf(err, "error loading project config")
		}
	}

	cfg.applyFallbacks()
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Model:       defaultModel,
		Temperature: defaultTemperature,
		Context: Context{
			MaxFiles:    defaultMaxFiles,
			MaxFileSize: defaultMaxFileSize,
		},
	}
}

// applyFallbacks fills in fields that must not stay empty after a partial
// config file has been merged over the defaults. It must run after all file
// merges: yaml.Unmarshal replaces list fields wholesale, so invariants on
// them cannot live in defaults().
func (c *Config) applyFallbacks() {
	// The agent's own state directory is never part of a project's context,
	// whatever hidden patterns a config file sets.
	for _, pattern := range []string{".codeforge", ".codeforge/**"} {
		if !containsPattern(c.FilesystemAccess.Hidden, pattern) {
			c.FilesystemAccess.Hidden = append(c.FilesystemAccess.Hidden, pattern)
		}
	}
	if c.WorkspacePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		c.WorkspacePath = filepath.Join(home, "codeforge-workspace")
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.Context.MaxFiles <= 0 {
		c.Context.MaxFiles = defaultMaxFiles
	}
	if c.Context.MaxFileSize <= 0 {
		c.Context.MaxFileSize = defaultMaxFileSize
	}
}

func containsPattern(patterns []string, pattern string) bool {
	for _, p := range patterns {
		if p == pattern {
			return true
		}
	}
	return false
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	// Note: Unmarshal will overwrite fields present in the YAML. This provides
	// a simple merge where project-level config replaces user-level.
	return yaml.Unmarshal(data, cfg)
}
