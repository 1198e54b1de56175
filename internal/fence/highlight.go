package fence

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// Stream writes a highlighted block to w. A Stream can be written once.
type Stream func(w io.Writer) error

// Highlighter tokenises code with chroma and formats it as class-based HTML
// under a root <div> carrying a configurable CSS class.
type Highlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
	disabled  bool
}

// NewHighlighter creates a Highlighter. An unknown style name falls back to
// chroma's default style; use Options.Validate to reject it beforehand.
func NewHighlighter(cssClass, styleName string, disabled bool) *Highlighter {
	return &Highlighter{
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.WithPreWrapper(rootWrapper{class: cssClass}),
		),
		style:    styles.Get(styleName),
		disabled: disabled,
	}
}

// Highlight tokenises code under lx. It returns an error wrapping
// ErrNotHandled, and no stream, when the block must fall back to default
// rendering. The checks run in order: disabled, unresolved, plaintext.
func (h *Highlighter) Highlight(code string, lx *Lexer, blockDisabled bool) (Stream, error) {
	switch {
	case h.disabled || blockDisabled:
		return nil, ErrHighlightDisabled
	case lx == nil:
		return nil, ErrNoLexer
	case lx.Tag == PlaintextTag && !lx.GuessRequested:
		return nil, ErrPlaintext
	}

	it, err := chroma.Coalesce(lx.lexer).Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenise, err)
	}

	return func(w io.Writer) error {
		return h.formatter.Format(w, h.style, it)
	}, nil
}

// WriteCSS writes the class-based stylesheet for the configured style.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

// rootWrapper surrounds chroma's <pre> with a classed <div>.
type rootWrapper struct {
	class string
}

func (r rootWrapper) Start(code bool, styleAttr string) string {
	if !code {
		return "<pre" + styleAttr + ">"
	}
	return `<div class="` + r.class + `"><pre` + styleAttr + `><code>`
}

func (r rootWrapper) End(code bool) string {
	if !code {
		return "</pre>"
	}
	return "</code></pre></div>"
}
