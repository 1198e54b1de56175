package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-mdfigure"
	"github.com/alnah/go-mdfigure/internal/config"
	"github.com/alnah/go-mdfigure/internal/fileutil"
	"github.com/alnah/go-mdfigure/internal/hints"
)

// runMain parses args (without the program name), runs the batch and
// returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args, env.Stderr)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if flags.common.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.common.version {
		printVersion(env.Stdout)
		return ExitSuccess
	}

	if err := run(ctx, flags, positional, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run orchestrates the rendering process.
func run(ctx context.Context, flags *cliFlags, positionalArgs []string, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}
	envCfg := loadEnvConfig(env.Getenv)

	// Load configuration
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	// flags > env > config file
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}

	inputs, err := resolveInputs(positionalArgs, cfg)
	if err != nil {
		return err
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputs, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdown, strings.Join(inputs, ", "))
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers, len(files))
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Rendering %d file(s) with %d worker(s)\n", len(files), workers)
	}

	start := env.Now()
	results := renderBatch(ctx, renderer, files, workers)
	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, renderer.GuessLanguage(), env)

	if cfg.Site.StyleSheet != "" {
		if err := writeStyleSheet(renderer, cfg.Site.StyleSheet); err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", cfg.Site.StyleSheet)
		}
	}

	if cfg.Site.Manifest != "" {
		if err := writeManifest(cfg.Site.Manifest, buildManifest(results, env.Now())); err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", cfg.Site.Manifest)
		}
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Done in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if failedCount > 0 {
		return fmt.Errorf("%d file(s) failed", failedCount)
	}

	return nil
}

// loadConfig loads the config named by the flag, else by MDFIGURE_CONFIG.
// Without either, the defaults apply.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			var tried []string
			if !fileutil.IsFilePath(name) {
				tried = config.SearchPaths(name)
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(tried))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// rendererOptions translates the merged config into renderer options.
func rendererOptions(cfg *config.Config) []mdfigure.Option {
	var opts []mdfigure.Option

	hc := cfg.Highlight
	if hc.DefaultLanguage != "" {
		opts = append(opts, mdfigure.WithDefaultLanguage(hc.DefaultLanguage))
	}
	if hc.GuessLanguage {
		opts = append(opts, mdfigure.WithGuessLanguage())
	}
	if hc.Disabled {
		opts = append(opts, mdfigure.WithHighlightDisabled())
	}
	if hc.CSSClass != "" {
		opts = append(opts, mdfigure.WithCSSClass(hc.CSSClass))
	}
	if hc.Style != "" {
		opts = append(opts, mdfigure.WithStyle(hc.Style))
	}
	if hc.Plain {
		opts = append(opts, mdfigure.WithPlain())
	}

	mc := cfg.Markdown
	if mc.HardWraps {
		opts = append(opts, mdfigure.WithHardWraps())
	}
	if mc.Unsafe {
		opts = append(opts, mdfigure.WithUnsafeHTML())
	}
	if mc.RewriteLinks {
		opts = append(opts, mdfigure.WithLinkRewrite())
	}

	return opts
}

// newRenderer builds the renderer, attaching hints to option errors.
func newRenderer(cfg *config.Config) (*mdfigure.Renderer, error) {
	r, err := mdfigure.NewRenderer(rendererOptions(cfg)...)
	if err == nil {
		return r, nil
	}

	switch {
	case errors.Is(err, mdfigure.ErrUnknownStyle):
		return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(styles.Names()))
	case errors.Is(err, mdfigure.ErrUnknownLanguage):
		return nil, fmt.Errorf("%w%s", err, hints.ForUnknownLanguage(cfg.Highlight.DefaultLanguage, lexers.Names(true)))
	case errors.Is(err, mdfigure.ErrInvalidCSSClass):
		return nil, fmt.Errorf("%w%s", err, hints.ForInvalidCSSClass())
	}
	return nil, err
}

// resolveInputs returns the positional inputs, else the configured default
// input directory.
func resolveInputs(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}, nil
	}
	return nil, ErrNoInput
}

// writeStyleSheet writes the highlight CSS for the renderer's style.
func writeStyleSheet(r *mdfigure.Renderer, path string) error {
	var buf bytes.Buffer
	if err := r.WriteStyleSheet(&buf); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
