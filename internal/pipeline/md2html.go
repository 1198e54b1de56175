package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-mdfigure/internal/fence"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (*Output, error)
}

// Output is the result of converting one document.
type Output struct {
	// HTML is the rendered body fragment.
	HTML string

	// Fallbacks lists fenced blocks rendered by goldmark's default code renderer.
	Fallbacks []fence.Fallback
}

// Options configures document-level rendering.
type Options struct {
	// HardWraps renders newlines inside paragraphs as <br>.
	HardWraps bool

	// Unsafe passes raw HTML in the document through.
	Unsafe bool

	// Plain highlights fenced blocks with goldmark-highlighting and no figure wrapping.
	Plain bool
}

// GoldmarkConverter is the full-document parser: GFM, footnotes and heading
// IDs, with fenced code blocks rendered by a fence.Converter.
type GoldmarkConverter struct {
	blocks *fence.Converter
	opts   Options
	extra  []goldmark.Extender
}

// NewGoldmarkConverter creates a GoldmarkConverter rendering fenced blocks with blocks.
func NewGoldmarkConverter(blocks *fence.Converter, opts Options) *GoldmarkConverter {
	return &GoldmarkConverter{blocks: blocks, opts: opts}
}

// htmlOption is an option accepted by both goldmark and its HTML renderer.
type htmlOption interface {
	renderer.Option
	html.Option
}

// rendererOptions returns the HTML renderer options shared by the document
// renderer and the fallback code renderer.
func (c *GoldmarkConverter) rendererOptions() []htmlOption {
	opts := []htmlOption{html.WithXHTML()} // Self-closing tags
	if c.opts.HardWraps {
		opts = append(opts, html.WithHardWraps())
	}
	if c.opts.Unsafe {
		opts = append(opts, html.WithUnsafe())
	}
	return opts
}

// newMarkdown builds a goldmark instance for a single conversion so that
// fallback reports never cross documents.
func (c *GoldmarkConverter) newMarkdown(report func(fence.Fallback)) goldmark.Markdown {
	opts := c.rendererOptions()
	htmlOpts := make([]html.Option, 0, len(opts))
	rendererOpts := make([]renderer.Option, 0, len(opts))
	for _, o := range opts {
		htmlOpts = append(htmlOpts, o)
		rendererOpts = append(rendererOpts, o)
	}

	extensions := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
	}
	extensions = append(extensions, c.extra...)
	blockOpts := c.blocks.Options()
	switch {
	case c.opts.Plain && blockOpts.Disabled:
		// goldmark's default code rendering only
	case c.opts.Plain:
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(blockOpts.Style),
			highlighting.WithGuessLanguage(blockOpts.GuessLanguage),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // CSS classes for smaller HTML and external stylesheet control
			),
		))
	default:
		extensions = append(extensions, fence.NewExtension(c.blocks,
			fence.WithFallbackHandler(report),
			fence.WithHTMLOptions(htmlOpts...),
		))
	}

	return goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Generate IDs for headings
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (*Output, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		out *Output
		err error
	}

	done := make(chan result, 1)

	go func() {
		// A panic here would not reach the caller's goroutine.
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: panic: %v", ErrHTMLConversion, r)}
			}
		}()

		out := &Output{}
		md := c.newMarkdown(func(f fence.Fallback) {
			out.Fallbacks = append(out.Fallbacks, f)
		})

		var buf bytes.Buffer
		if err := md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		out.HTML = buf.String()
		done <- result{out: out}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.out, r.err
	}
}
