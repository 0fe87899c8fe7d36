package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestHomeDir(t *testing.T) {
	t.Setenv("HOME", "/home/u")
	if got := HomeDir(); got != "/home/u" {
		t.Errorf("Expected /home/u, got %s", got)
	}

	t.Setenv("HOME", "")
	if got := HomeDir(); got == "" {
		t.Error("HomeDir should fall back to a non-empty directory")
	}
}

func TestUniqueOutputName(t *testing.T) {
	dir := t.TempDir()

	name, err := UniqueOutputName(dir, "output.mp4")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if name != "output.mp4" {
		t.Errorf("Expected output.mp4 for empty dir, got %s", name)
	}

	for _, existing := range []string{"output.mp4", "output-1.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, existing), []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to create %s: %v", existing, err)
		}
	}

	name, err = UniqueOutputName(dir, "output.mp4")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if name != "output-2.mp4" {
		t.Errorf("Expected output-2.mp4, got %s", name)
	}

	// Other extensions are independent
	name, _ = UniqueOutputName(dir, "output.mp3")
	if name != "output.mp3" {
		t.Errorf("Expected output.mp3, got %s", name)
	}
}

func TestOpenDirectory_NonExistent(t *testing.T) {
	err := OpenDirectory(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("Expected error for non-existent directory, got nil")
	}
}
