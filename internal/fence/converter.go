package fence

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Defaults applied when the corresponding option is empty.
const (
	DefaultCSSClass = "highlight"
	DefaultStyle    = "github"
)

// cssClassPattern accepts a single CSS identifier.
var cssClassPattern = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*$`)

// Options configures a Converter. It is read-only once the converter is built.
type Options struct {
	// DefaultLanguage is used for blocks without a language token.
	DefaultLanguage string

	// GuessLanguage enables content-based guessing when nothing else resolves.
	GuessLanguage bool

	// Disabled makes every block fall back to default rendering.
	Disabled bool

	// CSSClass is the class of the root <div> around highlighted code.
	CSSClass string

	// Style names the chroma style used for the stylesheet.
	Style string

	// Unsafe lets raw inline HTML through in captions.
	Unsafe bool
}

// Validate reports configuration errors before any block is processed.
func (o Options) Validate() error {
	var errs []error

	if o.CSSClass != "" && !cssClassPattern.MatchString(o.CSSClass) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidCSSClass, o.CSSClass))
	}

	lang := strings.TrimSpace(o.DefaultLanguage)
	if lang != "" && !strings.EqualFold(lang, GuessToken) && lexers.Get(lang) == nil {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownLanguage, o.DefaultLanguage))
	}

	if o.Style != "" {
		if _, ok := styles.Registry[o.Style]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownStyle, o.Style))
		}
	}

	return errors.Join(errs...)
}

func (o Options) withDefaults() Options {
	if o.CSSClass == "" {
		o.CSSClass = DefaultCSSClass
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	return o
}

// Block is one fenced code block as handed over by the document parser.
type Block struct {
	Code string
	Info string
}

// Converter turns fenced blocks into figures. It holds no per-block state
// and is safe for concurrent use.
type Converter struct {
	opts        Options
	captions    *CaptionRenderer
	highlighter *Highlighter
}

// NewConverter validates opts and creates a Converter.
func NewConverter(opts Options) (*Converter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	return &Converter{
		opts:        opts,
		captions:    NewCaptionRenderer(NewInlineOnlyParser(opts.Unsafe)),
		highlighter: NewHighlighter(opts.CSSClass, opts.Style, opts.Disabled),
	}, nil
}

// Options returns the effective options, defaults applied.
func (c *Converter) Options() Options {
	return c.opts
}

// Render writes the figure for b to w. When the block is not handled it
// writes nothing and returns an error wrapping ErrNotHandled.
func (c *Converter) Render(w io.Writer, b Block) error {
	info := ParseInfo(b.Info)

	var caption string
	var hasCaption bool
	if info.HasCaption {
		caption, hasCaption = c.captions.Render(info.Caption)
	}

	lx := ResolveLexer(info.Language, c.opts.DefaultLanguage, c.opts.GuessLanguage, b.Code)

	body, err := c.highlighter.Highlight(b.Code, lx, info.NoHighlight())
	if err != nil {
		return err
	}

	return Compose(body, caption, hasCaption).Render(w)
}

// Convert returns the figure HTML for b, or false when the caller should
// render the block its default way.
func (c *Converter) Convert(b Block) (string, bool) {
	var sb strings.Builder
	if err := c.Render(&sb, b); err != nil {
		return "", false
	}
	return sb.String(), true
}

// WriteCSS writes the stylesheet matching the generated markup.
func (c *Converter) WriteCSS(w io.Writer) error {
	return c.highlighter.WriteCSS(w)
}
