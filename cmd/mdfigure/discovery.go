package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-mdfigure/internal/fileutil"
)

// htmlExtension is the extension of rendered pages, without dot.
const htmlExtension = "html"

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
	ErrOutputFile       = errors.New("an .html output requires a single input file")
)

// FileToRender represents a single file to process.
type FileToRender struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to render under the given inputs.
// Directories are walked recursively and non-Markdown files in them are
// skipped; a Markdown extension is required for inputs named explicitly.
// Files reachable through several inputs are rendered once.
func discoverFiles(inputs []string, outputDir string) ([]FileToRender, error) {
	toFile := isHTMLPath(outputDir)

	var files []FileToRender
	seen := make(map[string]bool)
	add := func(f FileToRender) {
		key := filepath.Clean(f.InputPath)
		if seen[key] {
			return
		}
		seen[key] = true
		files = append(files, f)
	}

	for _, inputPath := range inputs {
		info, err := os.Stat(inputPath)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if !fileutil.IsMarkdown(inputPath) {
				return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
			}
			outPath, err := resolveOutputPath(inputPath, outputDir, "")
			if err != nil {
				return nil, err
			}
			add(FileToRender{InputPath: inputPath, OutputPath: outPath})
			continue
		}

		if toFile {
			return nil, fmt.Errorf("%w: %s is a directory", ErrOutputFile, inputPath)
		}

		var found []FileToRender
		err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !fileutil.IsMarkdown(path) {
				return nil
			}
			outPath, err := resolveOutputPath(path, outputDir, inputPath)
			if err != nil {
				return err
			}
			found = append(found, FileToRender{InputPath: path, OutputPath: outPath})
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Slice(found, func(i, j int) bool { return found[i].InputPath < found[j].InputPath })
		for _, f := range found {
			add(f)
		}
	}

	if toFile && len(files) > 1 {
		return nil, fmt.Errorf("%w: got %d files", ErrOutputFile, len(files))
	}

	return files, nil
}

// resolveOutputPath determines the HTML output path for a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) (string, error) {
	if outputDir == "" {
		return fileutil.ReplaceExtension(inputPath, htmlExtension)
	}

	if isHTMLPath(outputDir) {
		return outputDir, nil
	}

	name, err := fileutil.ReplaceExtension(filepath.Base(inputPath), htmlExtension)
	if err != nil {
		return "", err
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name), nil
		}
	}

	return filepath.Join(outputDir, name), nil
}

func isHTMLPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), "."+htmlExtension)
}
