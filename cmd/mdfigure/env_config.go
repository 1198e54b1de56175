package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-mdfigure/internal/config"
)

// envPrefix marks the environment variables read by mdfigure.
const envPrefix = "MDFIGURE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDFIGURE_CONFIG: config file name or path
	InputDir   string // MDFIGURE_INPUT_DIR: default input directory
	OutputDir  string // MDFIGURE_OUTPUT_DIR: default output directory

	DefaultLanguage string // MDFIGURE_LANG: language of fences that name none
	Style           string // MDFIGURE_STYLE: highlight style
	CSSClass        string // MDFIGURE_CSS_CLASS: root class of highlighted blocks
	Guess           *bool  // MDFIGURE_GUESS: guess languages from content
	Plain           *bool  // MDFIGURE_PLAIN: no figure wrapping

	Workers int // MDFIGURE_WORKERS: parallel workers
}

// knownEnvVars lists valid MDFIGURE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDFIGURE_CONFIG":     true,
	"MDFIGURE_INPUT_DIR":  true,
	"MDFIGURE_OUTPUT_DIR": true,
	"MDFIGURE_LANG":       true,
	"MDFIGURE_STYLE":      true,
	"MDFIGURE_CSS_CLASS":  true,
	"MDFIGURE_GUESS":      true,
	"MDFIGURE_PLAIN":      true,
	"MDFIGURE_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed booleans and integers are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:      getenv("MDFIGURE_CONFIG"),
		InputDir:        getenv("MDFIGURE_INPUT_DIR"),
		OutputDir:       getenv("MDFIGURE_OUTPUT_DIR"),
		DefaultLanguage: getenv("MDFIGURE_LANG"),
		Style:           getenv("MDFIGURE_STYLE"),
		CSSClass:        getenv("MDFIGURE_CSS_CLASS"),
		Guess:           parseEnvBool(getenv("MDFIGURE_GUESS")),
		Plain:           parseEnvBool(getenv("MDFIGURE_PLAIN")),
	}

	if workers := getenv("MDFIGURE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

func parseEnvBool(s string) *bool {
	if s == "" {
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &b
}

// warnUnknownEnvVars logs warnings for unrecognized MDFIGURE_* variables.
// Helps catch typos like MDFIGURE_STYEL.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overlays environment values on the config file values.
// CLI flags are applied afterwards by mergeFlags, giving:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}

	if env.DefaultLanguage != "" {
		cfg.Highlight.DefaultLanguage = env.DefaultLanguage
	}
	if env.Style != "" {
		cfg.Highlight.Style = env.Style
	}
	if env.CSSClass != "" {
		cfg.Highlight.CSSClass = env.CSSClass
	}
	if env.Guess != nil {
		cfg.Highlight.GuessLanguage = *env.Guess
	}
	if env.Plain != nil {
		cfg.Highlight.Plain = *env.Plain
	}
}
