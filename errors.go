package mdfigure

import (
	"errors"

	"github.com/alnah/go-mdfigure/internal/fence"
	"github.com/alnah/go-mdfigure/internal/page"
	"github.com/alnah/go-mdfigure/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrFrontMatter    = page.ErrFrontMatter
	ErrLinkRewrite    = errors.New("link rewriting failed")

	// Configuration errors, returned by NewRenderer.
	ErrUnknownLanguage = fence.ErrUnknownLanguage
	ErrUnknownStyle    = fence.ErrUnknownStyle
	ErrInvalidCSSClass = fence.ErrInvalidCSSClass

	// Fallback reasons. All of them match ErrNotHandled with errors.Is.
	ErrNotHandled        = fence.ErrNotHandled
	ErrHighlightDisabled = fence.ErrHighlightDisabled
	ErrNoLexer           = fence.ErrNoLexer
	ErrPlaintext         = fence.ErrPlaintext
	ErrTokenise          = fence.ErrTokenise
)
