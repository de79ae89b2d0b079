package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSAndroid = "android"
)

// Asset directory names
const (
	AssetsDirName     = "assets"
	AndroidAssetsRoot = "/sdcard/Pictures/PlacesGuide"
)

// ImageExtensions lists the extensions tried, in order, for an image reference
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// DefaultAssetsDir returns the directory place images are loaded from:
// an "assets" folder next to the executable, or a shared pictures folder on
// Android.
func DefaultAssetsDir() (string, error) {
	if runtime.GOOS == OSAndroid {
		return AndroidAssetsRoot, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}

	return filepath.Join(filepath.Dir(exe), AssetsDirName), nil
}

// ResolveImagePath finds the file for an image reference inside dir. A
// reference that already carries an extension is used as is.
func ResolveImagePath(dir, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("image reference is empty")
	}
	if strings.ContainsAny(ref, `/\`) || strings.Contains(ref, "..") {
		return "", fmt.Errorf("invalid image reference: %q", ref)
	}

	candidates := []string{ref}
	if filepath.Ext(ref) == "" {
		candidates = candidates[:0]
		for _, ext := range ImageExtensions {
			candidates = append(candidates, ref+ext)
		}
	}

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("image %q not found in %s", ref, dir)
}
