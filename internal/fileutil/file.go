// Package fileutil finds image files and derives output filenames.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// imageExtensions are the recognized image file extensions
var imageExtensions = []string{"gif", "jpg", "jpeg", "png", "webp"}

// Extension returns the file extension without the dot, lower-cased.
// Returns "" for names without a dot.
func Extension(name string) string {
	ext := filepath.Ext(name)
	if len(ext) > 0 {
		return strings.ToLower(ext[1:])
	}
	return ""
}

// IsImage checks if a filename has a recognized image extension
func IsImage(name string) bool {
	ext := Extension(name)
	for _, imgExt := range imageExtensions {
		if ext == imgExt {
			return true
		}
	}
	return false
}

// ReadFiles lists the regular files in a directory, or expands
// the path as a glob pattern if it is not a directory.
func ReadFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}

		var files []string
		for _, entry := range entries {
			joined := filepath.Join(path, entry.Name())
			if info, err := os.Stat(joined); err == nil && info.Mode().IsRegular() {
				files = append(files, joined)
			}
		}
		return files, nil
	}

	return filepath.Glob(path)
}

// ReadImageFiles lists the files at path but returns image files only
func ReadImageFiles(path string) ([]string, error) {
	files, err := ReadFiles(path)
	if err != nil {
		return nil, err
	}

	var images []string
	for _, file := range files {
		if IsImage(file) {
			images = append(images, file)
		}
	}
	return images, nil
}

// ResizedName derives the output filename for a resized copy,
// e.g. "photo.png" becomes "photo - resized.png".
func ResizedName(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + " - resized" + ext
}
