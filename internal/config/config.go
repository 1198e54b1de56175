package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdfigure/internal/fileutil"
	"github.com/alnah/go-mdfigure/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxLanguageLength = 64   // lexer names and aliases are short
	MaxCSSClassLength = 100
	MaxStyleLength    = 64
)

// appDirName is the directory searched under the user config dir.
const appDirName = "go-mdfigure"

// Config holds the CLI configuration. Zero values mean "library default".
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Highlight HighlightConfig `yaml:"highlight"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
	Site      SiteConfig      `yaml:"site"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// HighlightConfig maps onto the fenced block converter options.
type HighlightConfig struct {
	DefaultLanguage string `yaml:"defaultLanguage"` // Used when a fence names no language
	GuessLanguage   bool   `yaml:"guessLanguage"`
	Disabled        bool   `yaml:"disabled"`
	CSSClass        string `yaml:"cssClass"` // Root class of highlighted blocks (default: "highlight")
	Style           string `yaml:"style"`    // Chroma style for --css (default: "github")
	Plain           bool   `yaml:"plain"`    // Highlight without <figure> wrappers
}

// MarkdownConfig defines document-level rendering options.
type MarkdownConfig struct {
	HardWraps    bool `yaml:"hardWraps"`
	Unsafe       bool `yaml:"unsafe"`       // Pass raw HTML through
	RewriteLinks bool `yaml:"rewriteLinks"` // Point relative .md links at .html
}

// SiteConfig defines the build artifacts written next to the pages.
type SiteConfig struct {
	Manifest   string `yaml:"manifest"`   // YAML manifest path (empty = none)
	StyleSheet string `yaml:"styleSheet"` // Chroma CSS path (empty = none)
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("highlight.defaultLanguage", c.Highlight.DefaultLanguage, MaxLanguageLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.cssClass", c.Highlight.CSSClass, MaxCSSClassLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Highlight.CSSClass, " \t\n\"'<>") {
		return fmt.Errorf("highlight.cssClass: invalid value %q (must be a single class name)", c.Highlight.CSSClass)
	}

	if err := validateFieldLength("site.manifest", c.Site.Manifest, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.styleSheet", c.Site.StyleSheet, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration that defers every choice to the library.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdfigure/
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
