package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Config represents the noteshift configuration
type Config struct {
	// DefaultDir is opened when no path argument is given.
	DefaultDir string `json:"default_dir"`
	// WrapWidth is the editor wrap width in columns.
	WrapWidth int `json:"wrap_width"`
	// FileExtensions lists the extensions picked up by directory discovery.
	FileExtensions []string `json:"file_extensions"`
	LogFile        string   `json:"log_file"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DefaultDir:     filepath.Join(home, "notes"),
		WrapWidth:      100,
		FileExtensions: []string{".md"},
		LogFile:        "/tmp/noteshift.log",
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "noteshift", "config.json")
	}
	return filepath.Join(home, ".config", "noteshift", "config.json")
}

// StateFilePath returns the path to the session state file
// Uses platform-specific XDG data directory
// Can be overridden for testing
var StateFilePath = func() string {
	return filepath.Join(xdg.DataHome, "noteshift", "state.json")
}

// Load reads configuration from the XDG config directory. A missing file
// yields the defaults; a partial file is filled in with them.
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills zero-valued fields and normalizes extensions to a
// leading dot ("md" and ".md" are both accepted in the file).
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.DefaultDir == "" {
		c.DefaultDir = def.DefaultDir
	}
	if c.WrapWidth == 0 {
		c.WrapWidth = def.WrapWidth
	}
	if len(c.FileExtensions) == 0 {
		c.FileExtensions = def.FileExtensions
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
	for i, ext := range c.FileExtensions {
		if !strings.HasPrefix(ext, ".") {
			c.FileExtensions[i] = "." + ext
		}
	}
}

// Save writes configuration to the XDG config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DefaultDir == "" {
		return fmt.Errorf("default_dir cannot be empty")
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	if c.WrapWidth < 20 {
		return fmt.Errorf("wrap_width must be at least 20, got %d", c.WrapWidth)
	}
	if len(c.FileExtensions) == 0 {
		return fmt.Errorf("file_extensions cannot be empty")
	}
	for _, ext := range c.FileExtensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("invalid file extension '%s'", ext)
		}
	}
	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.DefaultDir, err = expandPath(c.DefaultDir)
	if err != nil {
		return fmt.Errorf("failed to expand default_dir: %w", err)
	}

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
