package fence

import (
	"errors"
	"fmt"
)

// ErrNotHandled signals that a block must be rendered by the default code renderer.
var ErrNotHandled = errors.New("fenced block not handled")

// Reasons a block is not handled. All of them wrap ErrNotHandled.
var (
	ErrHighlightDisabled = fmt.Errorf("%w: highlighting disabled", ErrNotHandled)
	ErrNoLexer           = fmt.Errorf("%w: no lexer for language", ErrNotHandled)
	ErrPlaintext         = fmt.Errorf("%w: plaintext without guessing", ErrNotHandled)
	ErrTokenise          = fmt.Errorf("%w: tokenisation failed", ErrNotHandled)
)

// Configuration errors.
var (
	ErrUnknownLanguage = errors.New("unknown default language")
	ErrUnknownStyle    = errors.New("unknown highlight style")
	ErrInvalidCSSClass = errors.New("invalid CSS class name")
)

// ErrCaptionParse indicates the inline-only parser failed on a caption.
var ErrCaptionParse = errors.New("caption parse failed")
