package mdfigure

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/alnah/go-mdfigure/internal/fence"
	"github.com/alnah/go-mdfigure/internal/page"
	"github.com/alnah/go-mdfigure/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// rendererConfig holds the options collected before NewRenderer builds the pipeline.
type rendererConfig struct {
	block        fence.Options
	doc          pipeline.Options
	rewriteLinks bool
}

// Renderer converts Markdown documents to HTML with figure-wrapped code blocks.
// Create with NewRenderer; a Renderer is safe for concurrent use.
type Renderer struct {
	cfg           rendererConfig
	blocks        *fence.Converter
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
}

// NewRenderer creates a Renderer. Option values are validated here, so a
// bad language, style or CSS class fails before any document is rendered.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		preprocessor: &pipeline.CommonMarkPreprocessor{},
	}

	for _, opt := range opts {
		opt(r)
	}

	blocks, err := fence.NewConverter(r.cfg.block)
	if err != nil {
		return nil, fmt.Errorf("configuring renderer: %w", err)
	}
	r.blocks = blocks

	if r.htmlConverter == nil {
		r.htmlConverter = pipeline.NewGoldmarkConverter(blocks, r.cfg.doc)
	}

	return r, nil
}

// Render converts one document. Front matter is removed from the output and
// returned in Result.Page. The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	src := r.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	meta, body, err := page.Parse([]byte(src))
	if err != nil {
		return nil, r.wrap(input, err)
	}
	lineOffset := bytes.Count([]byte(src[:len(src)-len(body)]), []byte("\n"))

	out, err := r.htmlConverter.ToHTML(ctx, string(body))
	if err != nil {
		return nil, r.wrap(input, err)
	}

	htmlContent := out.HTML
	if r.cfg.rewriteLinks {
		htmlContent, err = pipeline.RewriteMarkdownLinks(htmlContent)
		if err != nil {
			return nil, r.wrap(input, fmt.Errorf("%w: %v", ErrLinkRewrite, err))
		}
	}

	return &Result{
		HTML:      htmlContent,
		Page:      toPageMeta(meta),
		Fallbacks: toFallbacks(out.Fallbacks, lineOffset),
	}, nil
}

// RenderBlock renders a single fenced block given its code and info string.
// It returns false when the block keeps the default code rendering.
func (r *Renderer) RenderBlock(code, info string) (string, bool) {
	return r.blocks.Convert(fence.Block{Code: code, Info: info})
}

// WriteStyleSheet writes the CSS rules for the configured highlight style.
func (r *Renderer) WriteStyleSheet(w io.Writer) error {
	return r.blocks.WriteCSS(w)
}

// GuessLanguage reports whether content-based language detection is on.
func (r *Renderer) GuessLanguage() bool {
	return r.blocks.Options().GuessLanguage
}

func (r *Renderer) wrap(input Input, err error) error {
	if input.Name == "" {
		return err
	}
	return fmt.Errorf("%s: %w", input.Name, err)
}
