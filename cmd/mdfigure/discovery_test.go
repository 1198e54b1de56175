package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		cfg     *Config
		want    []string
		wantErr error
	}{
		{
			name: "args take precedence over config",
			args: []string{"a.md", "notes"},
			cfg:  &Config{Input: InputConfig{DefaultDir: "./default/"}},
			want: []string{"a.md", "notes"},
		},
		{
			name: "config fallback when no args",
			args: []string{},
			cfg:  &Config{Input: InputConfig{DefaultDir: "./default/"}},
			want: []string{"./default/"},
		},
		{
			name:    "error when no args and no config",
			args:    nil,
			cfg:     &Config{},
			wantErr: ErrNoInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveInputs(tt.args, tt.cfg)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("resolveInputs() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("resolveInputs()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		inputPath    string
		outputDir    string
		baseInputDir string
		want         string
	}{
		{
			name:      "no output dir renders next to source",
			inputPath: filepath.Join("docs", "post.md"),
			want:      filepath.Join("docs", "post.html"),
		},
		{
			name:      "markdown extension replaced",
			inputPath: filepath.Join("docs", "post.markdown"),
			want:      filepath.Join("docs", "post.html"),
		},
		{
			name:      "explicit html file",
			inputPath: "post.md",
			outputDir: filepath.Join("out", "index.html"),
			want:      filepath.Join("out", "index.html"),
		},
		{
			name:      "output directory",
			inputPath: filepath.Join("docs", "post.md"),
			outputDir: "site",
			want:      filepath.Join("site", "post.html"),
		},
		{
			name:         "subdirectory structure kept",
			inputPath:    filepath.Join("docs", "series", "part1.md"),
			outputDir:    "site",
			baseInputDir: "docs",
			want:         filepath.Join("site", "series", "part1.html"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveOutputPath(tt.inputPath, tt.outputDir, tt.baseInputDir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.md"), "# B")
	writeFile(t, filepath.Join(dir, "a.markdown"), "# A")
	writeFile(t, filepath.Join(dir, "notes.txt"), "skip me")
	writeFile(t, filepath.Join(dir, "sub", "c.MD"), "# C")

	t.Run("directory walk skips non-markdown", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles([]string{dir}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{
			filepath.Join(dir, "a.markdown"),
			filepath.Join(dir, "b.md"),
			filepath.Join(dir, "sub", "c.MD"),
		}
		if len(files) != len(want) {
			t.Fatalf("got %d files, want %d: %v", len(files), len(want), files)
		}
		for i, f := range files {
			if f.InputPath != want[i] {
				t.Errorf("files[%d].InputPath = %q, want %q", i, f.InputPath, want[i])
			}
		}
		if files[2].OutputPath != filepath.Join(dir, "sub", "c.html") {
			t.Errorf("OutputPath = %q", files[2].OutputPath)
		}
	})

	t.Run("output dir mirrors tree", func(t *testing.T) {
		t.Parallel()

		out := filepath.Join(t.TempDir(), "site")
		files, err := discoverFiles([]string{dir}, out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := files[2].OutputPath, filepath.Join(out, "sub", "c.html"); got != want {
			t.Errorf("OutputPath = %q, want %q", got, want)
		}
	})

	t.Run("overlapping inputs rendered once", func(t *testing.T) {
		t.Parallel()

		files, err := discoverFiles([]string{filepath.Join(dir, "b.md"), dir}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 3 {
			t.Errorf("got %d files, want 3", len(files))
		}
		if files[0].InputPath != filepath.Join(dir, "b.md") {
			t.Errorf("explicit file should come first, got %q", files[0].InputPath)
		}
	})

	t.Run("explicit file needs markdown extension", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles([]string{filepath.Join(dir, "notes.txt")}, "")
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("html output rejects directory input", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles([]string{dir}, "out.html")
		if !errors.Is(err, ErrOutputFile) {
			t.Errorf("error = %v, want ErrOutputFile", err)
		}
	})

	t.Run("html output rejects several files", func(t *testing.T) {
		t.Parallel()

		inputs := []string{filepath.Join(dir, "a.markdown"), filepath.Join(dir, "b.md")}
		_, err := discoverFiles(inputs, "out.html")
		if !errors.Is(err, ErrOutputFile) {
			t.Errorf("error = %v, want ErrOutputFile", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles([]string{filepath.Join(dir, "missing.md")}, "")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})
}
