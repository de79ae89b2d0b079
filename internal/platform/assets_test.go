package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("img"), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
}

func TestResolveImagePath(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "tower.png"))
	writeFile(t, filepath.Join(tempDir, "eduardo_park.jpg"))
	writeFile(t, filepath.Join(tempDir, "ramiro.webp"))

	tests := []struct {
		ref      string
		expected string
	}{
		{"tower", "tower.png"},
		{"eduardo_park", "eduardo_park.jpg"},
		{"ramiro.webp", "ramiro.webp"},
	}

	for _, test := range tests {
		path, err := ResolveImagePath(tempDir, test.ref)
		if err != nil {
			t.Errorf("ResolveImagePath(%s) returned error: %v", test.ref, err)
			continue
		}
		if filepath.Base(path) != test.expected {
			t.Errorf("ResolveImagePath(%s) = %s, expected %s", test.ref, filepath.Base(path), test.expected)
		}
	}
}

func TestResolveImagePath_PrefersPNG(t *testing.T) {
	tempDir := t.TempDir()
	writeFile(t, filepath.Join(tempDir, "tower.jpg"))
	writeFile(t, filepath.Join(tempDir, "tower.png"))

	path, err := ResolveImagePath(tempDir, "tower")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if filepath.Ext(path) != ".png" {
		t.Errorf("Expected .png to win, got %s", path)
	}
}

func TestResolveImagePath_Errors(t *testing.T) {
	tempDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tempDir, "dir.png"), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	for _, ref := range []string{"", "  ", "missing", "../etc/passwd", "sub/tower", "dir"} {
		if _, err := ResolveImagePath(tempDir, ref); err == nil {
			t.Errorf("Expected error for reference %q", ref)
		}
	}
}

func TestDefaultAssetsDir(t *testing.T) {
	dir, err := DefaultAssetsDir()
	if err != nil {
		t.Fatalf("Failed to get assets directory: %v", err)
	}

	if filepath.Base(dir) != AssetsDirName {
		t.Errorf("Expected directory to end with '%s', got: %s", AssetsDirName, dir)
	}
}
