package mdfigure

// Option configures a Renderer.
type Option func(*Renderer)

// WithDefaultLanguage sets the language of fenced blocks that name none.
// The name must be known to the highlighter, or be "guess".
func WithDefaultLanguage(lang string) Option {
	return func(r *Renderer) {
		r.cfg.block.DefaultLanguage = lang
	}
}

// WithGuessLanguage lets the highlighter detect the language of blocks
// that name none, from their content.
func WithGuessLanguage() Option {
	return func(r *Renderer) {
		r.cfg.block.GuessLanguage = true
	}
}

// WithHighlightDisabled renders every fenced block the default way.
func WithHighlightDisabled() Option {
	return func(r *Renderer) {
		r.cfg.block.Disabled = true
	}
}

// WithCSSClass sets the class of the element wrapping highlighted code.
// Default: "highlight".
func WithCSSClass(class string) Option {
	return func(r *Renderer) {
		r.cfg.block.CSSClass = class
	}
}

// WithStyle sets the highlight style used by WriteStyleSheet. Default: "github".
func WithStyle(name string) Option {
	return func(r *Renderer) {
		r.cfg.block.Style = name
	}
}

// WithUnsafeHTML passes raw HTML through, in documents and in captions.
func WithUnsafeHTML() Option {
	return func(r *Renderer) {
		r.cfg.block.Unsafe = true
		r.cfg.doc.Unsafe = true
	}
}

// WithHardWraps renders newlines inside paragraphs as line breaks.
func WithHardWraps() Option {
	return func(r *Renderer) {
		r.cfg.doc.HardWraps = true
	}
}

// WithPlain highlights fenced blocks without figure wrapping or captions.
func WithPlain() Option {
	return func(r *Renderer) {
		r.cfg.doc.Plain = true
	}
}

// WithLinkRewrite points relative links to .md and .markdown files at
// the .html file rendered from them.
func WithLinkRewrite() Option {
	return func(r *Renderer) {
		r.cfg.rewriteLinks = true
	}
}
