package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "nested", "memes")

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

func TestGetHomePicturesDir(t *testing.T) {
	if IsAndroid() {
		t.Skip("desktop layout only")
	}

	dir, err := GetHomePicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures directory: %v", err)
	}

	if filepath.Base(dir) != AppAlbumName {
		t.Errorf("Expected directory to end with %s, got: %s", AppAlbumName, dir)
	}
	if filepath.Base(filepath.Dir(dir)) != PicturesDirName {
		t.Errorf("Expected album inside %s, got: %s", PicturesDirName, dir)
	}
}

func TestOpenFolder_Missing(t *testing.T) {
	err := OpenFolder(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Expected error for missing folder")
	}
	if !strings.Contains(err.Error(), "folder does not exist") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestNotifyMediaScanner_NoopOnDesktop(t *testing.T) {
	if IsAndroid() {
		t.Skip("desktop only")
	}
	if err := NotifyMediaScanner("/tmp/meme.png"); err != nil {
		t.Errorf("Expected nil error on desktop, got %v", err)
	}
}
