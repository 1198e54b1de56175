package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/alnah/go-mdfigure"
	"github.com/alnah/go-mdfigure/internal/fileutil"
	"github.com/alnah/go-mdfigure/internal/hints"
)

// filePermissions is the mode of new output files: rw-r--r--.
const filePermissions = 0o644

// Sentinel errors for batch operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrNoMarkdown   = errors.New("no markdown files found")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteOutput  = errors.New("failed to write output file")
)

// DocumentRenderer is the interface for the rendering service.
type DocumentRenderer interface {
	Render(ctx context.Context, input mdfigure.Input) (*mdfigure.Result, error)
}

// Compile-time interface implementation check.
var _ DocumentRenderer = (*mdfigure.Renderer)(nil)

// RenderResult holds the outcome of a single file.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Page       mdfigure.PageMeta
	Fallbacks  []mdfigure.Fallback
	Err        error
	Duration   time.Duration
}

// renderBatch processes files concurrently with a shared renderer.
// Results are returned in the order of files.
func renderBatch(ctx context.Context, renderer DocumentRenderer, files []FileToRender, workers int) []RenderResult {
	if len(files) == 0 {
		return nil
	}

	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]RenderResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = renderFile(ctx, renderer, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderFile processes a single file and returns the result.
func renderFile(ctx context.Context, renderer DocumentRenderer, f FileToRender) RenderResult {
	start := time.Now()
	result := RenderResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	doc, err := renderer.Render(ctx, mdfigure.Input{
		Markdown: string(content),
		Name:     f.InputPath,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Page = doc.Page
	result.Fallbacks = doc.Fallbacks

	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(doc.HTML), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed files.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Fallbacks int

	// Unresolved counts blocks that named no language and got no lexer.
	Unresolved int
}

// countResults tallies succeeded and failed files.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.Fallbacks += len(r.Fallbacks)
		for _, fb := range r.Fallbacks {
			if fb.Language == "" && errors.Is(fb.Reason, mdfigure.ErrNoLexer) {
				summary.Unresolved++
			}
		}
	}
	return summary
}

// printResults outputs rendering results and returns the failure count.
// Verbose mode also lists the fenced blocks that kept the default rendering.
func printResults(results []RenderResult, quiet, verbose, guessEnabled bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
			for _, fb := range r.Fallbacks {
				fmt.Fprintf(env.Stderr, "%s:%d: %s\n", r.InputPath, fb.Line, describeFallback(fb))
			}
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if verbose && !quiet && summary.Fallbacks > 0 {
		fmt.Fprintf(env.Stderr, "%d fenced block(s) use default rendering%s\n",
			summary.Fallbacks, hints.ForFallbacks(summary.Unresolved, guessEnabled))
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

func describeFallback(fb mdfigure.Fallback) string {
	lang := fb.Language
	if lang == "" {
		lang = "no language"
	}
	return fmt.Sprintf("fenced block (%s): %v", lang, fb.Reason)
}
