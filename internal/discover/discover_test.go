package discover

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFiles(t *testing.T) {
	tmpDir := t.TempDir()

	// Create test files
	for _, name := range []string{"b.md", "a.md", "notes.markdown", "readme.txt"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("# test\n"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	// Create subdirectory with files
	subDir := filepath.Join(tmpDir, "subdir")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(subDir, "nested.md"), []byte("# test\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file in subdir: %v", err)
	}

	// Scan for .md files
	mdFiles, err := Files(tmpDir, []string{".md"})
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}

	if len(mdFiles) != 3 {
		t.Errorf("Expected 3 .md files, got %d: %v", len(mdFiles), mdFiles)
	}

	// Results are sorted
	for i := 1; i < len(mdFiles); i++ {
		if mdFiles[i-1] > mdFiles[i] {
			t.Errorf("Files not sorted: %v", mdFiles)
		}
	}

	// Scan with multiple extensions
	all, err := Files(tmpDir, []string{".md", ".markdown"})
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 files with both extensions, got %d", len(all))
	}
}

func TestFilesSkipsHidden(t *testing.T) {
	tmpDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(tmpDir, "visible.md"), []byte("# test\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ".hidden.md"), []byte("# test\n"), 0644); err != nil {
		t.Fatalf("Failed to create hidden file: %v", err)
	}

	// Hidden directory with a markdown file inside
	hiddenDir := filepath.Join(tmpDir, ".obsidian")
	if err := os.MkdirAll(hiddenDir, 0755); err != nil {
		t.Fatalf("Failed to create hidden directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(hiddenDir, "cache.md"), []byte("# test\n"), 0644); err != nil {
		t.Fatalf("Failed to create file in hidden dir: %v", err)
	}

	files, err := Files(tmpDir, []string{".md"})
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}

	if len(files) != 1 {
		t.Errorf("Expected 1 visible file, got %d: %v", len(files), files)
	}
	if len(files) == 1 && filepath.Base(files[0]) != "visible.md" {
		t.Errorf("Expected visible.md, got %s", files[0])
	}
}

func TestFilesMissingDir(t *testing.T) {
	_, err := Files(filepath.Join(t.TempDir(), "does-not-exist"), []string{".md"})
	if err == nil {
		t.Error("Expected error for missing directory")
	}
}
