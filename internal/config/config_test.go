package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultDir == "" {
		t.Error("Expected DefaultDir to be set")
	}
	if cfg.WrapWidth != 100 {
		t.Errorf("Expected WrapWidth to be 100, got %d", cfg.WrapWidth)
	}
	if len(cfg.FileExtensions) != 1 || cfg.FileExtensions[0] != ".md" {
		t.Errorf("Expected FileExtensions to be [.md], got %v", cfg.FileExtensions)
	}
	if cfg.LogFile == "" {
		t.Error("Expected LogFile to be set")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name: "empty default_dir",
			config: &Config{
				DefaultDir:     "",
				WrapWidth:      100,
				FileExtensions: []string{".md"},
				LogFile:        "/tmp/test.log",
			},
			wantErr: true,
		},
		{
			name: "wrap width too small",
			config: &Config{
				DefaultDir:     "/path/to/notes",
				WrapWidth:      10,
				FileExtensions: []string{".md"},
				LogFile:        "/tmp/test.log",
			},
			wantErr: true,
		},
		{
			name: "no extensions",
			config: &Config{
				DefaultDir:     "/path/to/notes",
				WrapWidth:      100,
				FileExtensions: []string{},
				LogFile:        "/tmp/test.log",
			},
			wantErr: true,
		},
		{
			name: "extension without dot",
			config: &Config{
				DefaultDir:     "/path/to/notes",
				WrapWidth:      100,
				FileExtensions: []string{"md"},
				LogFile:        "/tmp/test.log",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	// Create a temporary directory for test config
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")

	// Override ConfigPath for testing
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	// Create test config
	testCfg := &Config{
		DefaultDir:     "/test/notes",
		WrapWidth:      80,
		FileExtensions: []string{".md", ".markdown"},
		LogFile:        "/tmp/noteshift-test.log",
	}

	// Save config
	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	// Check file exists
	if _, err := os.Stat(testConfigPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	// Load config
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedCfg.WrapWidth != testCfg.WrapWidth {
		t.Errorf("WrapWidth mismatch: got %d, want %d", loadedCfg.WrapWidth, testCfg.WrapWidth)
	}
	if len(loadedCfg.FileExtensions) != 2 {
		t.Errorf("FileExtensions mismatch: got %v", loadedCfg.FileExtensions)
	}
	if loadedCfg.LogFile == "" {
		t.Error("LogFile should not be empty")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	// Create a temporary directory
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "nonexistent.json")

	// Override ConfigPath for testing
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	// Load should return default config when file doesn't exist
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}

	// Should return default config
	if cfg.WrapWidth != 100 {
		t.Errorf("Expected default wrap width 100, got %d", cfg.WrapWidth)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")

	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	// Partial config: extensions without dots, no wrap width
	partial := `{"default_dir": "/test/notes", "file_extensions": ["md", "markdown"]}`
	if err := os.WriteFile(testConfigPath, []byte(partial), 0644); err != nil {
		t.Fatalf("Failed to write partial config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.WrapWidth != 100 {
		t.Errorf("Expected default wrap width 100, got %d", cfg.WrapWidth)
	}
	if cfg.LogFile == "" {
		t.Error("Expected default log file to be applied")
	}
	if cfg.FileExtensions[0] != ".md" || cfg.FileExtensions[1] != ".markdown" {
		t.Errorf("Expected normalized extensions, got %v", cfg.FileExtensions)
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		contains string // The output should contain this
	}{
		{
			name:     "tilde expansion",
			input:    "~/test",
			contains: homeDir,
		},
		{
			name:     "tilde only",
			input:    "~",
			contains: homeDir,
		},
		{
			name:     "absolute path",
			input:    "/tmp/test",
			contains: "/tmp/test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if result == "" {
				t.Error("expandPath() returned empty string")
			}
			// Just verify it's not the original unexpanded path
			if tt.input[0] == '~' && result == tt.input {
				t.Errorf("Path was not expanded: %s", result)
			}
		})
	}
}

func TestConfigPathsExpanded(t *testing.T) {
	tmpDir := t.TempDir()
	testConfigPath := filepath.Join(tmpDir, "config.json")

	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return testConfigPath
	}
	defer func() {
		ConfigPath = originalConfigPath
	}()

	// Create test config with tilde paths
	testCfg := &Config{
		DefaultDir:     "~/notes",
		WrapWidth:      100,
		FileExtensions: []string{".md"},
		LogFile:        "~/noteshift.log",
	}

	// Save and load
	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Verify paths are expanded (no longer contain ~)
	if loadedCfg.DefaultDir[0] == '~' {
		t.Error("DefaultDir was not expanded")
	}
	if loadedCfg.LogFile[0] == '~' {
		t.Error("LogFile was not expanded")
	}
}
