// Package fileutil provides file and path utility functions.
package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// markdownExtensions are the source extensions the CLI picks up, lower case.
var markdownExtensions = []string{".md", ".markdown"}

// WriteFileAtomic writes data to path through a temporary file and a rename,
// so readers never see a partial file. Missing parent directories are
// created. A new file gets perm; an existing file keeps its mode.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	_, statErr := os.Stat(path)
	existed := statErr == nil

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if !existed {
		if err := os.Chmod(path, perm); err != nil {
			return fmt.Errorf("setting mode on %s: %w", path, err)
		}
	}
	return nil
}

// ReplaceExtension swaps the extension of path for extension (without dot).
func ReplaceExtension(path, extension string) (string, error) {
	if err := ValidateExtension(extension); err != nil {
		return "", err
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + extension, nil
}

// ValidateExtension checks that the extension is safe for use in file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// IsMarkdown reports whether path has a Markdown extension (case-insensitive).
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range markdownExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "../shared/site.yaml" -> true (parent path)
//   - "/absolute/site.yaml" -> true (absolute)
//   - "C:\config\site.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
