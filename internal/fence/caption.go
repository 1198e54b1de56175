package fence

import (
	"bytes"
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// InlineOnlyParser renders Markdown restricted to inline productions:
// emphasis, strong, code spans, links, images, raw inline HTML and
// strikethrough. No block parser is registered, so headings, lists,
// paragraphs, quotes and fences cannot be produced from any input.
type InlineOnlyParser struct {
	md goldmark.Markdown
}

// NewInlineOnlyParser creates an inline-only parser.
// Raw inline HTML is passed through only when unsafe is true.
func NewInlineOnlyParser(unsafe bool) *InlineOnlyParser {
	rendererOpts := []renderer.Option{gmhtml.WithXHTML()}
	if unsafe {
		rendererOpts = append(rendererOpts, gmhtml.WithUnsafe())
	}

	p := parser.NewParser(
		parser.WithBlockParsers(util.Prioritized(spanBlockParser{}, 100)),
		parser.WithInlineParsers(parser.DefaultInlineParsers()...),
	)

	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithExtensions(extension.Strikethrough),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &InlineOnlyParser{md: md}
}

// Render converts src to an inline HTML fragment with no wrapping element.
func (p *InlineOnlyParser) Render(src string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("%w: %v", ErrCaptionParse, r)
		}
	}()

	var buf bytes.Buffer
	if err := p.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCaptionParse, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// spanBlockParser collects every source line into a single TextBlock.
// TextBlock renders its inline children without a <p> wrapper.
// Blank lines are dropped, so paragraphs separated by them are joined
// with a soft line break.
type spanBlockParser struct{}

func (spanBlockParser) Trigger() []byte {
	return nil
}

func (spanBlockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	_, segment := reader.PeekLine()
	segment = segment.TrimLeftSpace(reader.Source())
	if segment.IsEmpty() {
		return nil, parser.NoChildren
	}
	node := ast.NewTextBlock()
	node.Lines().Append(segment)
	reader.AdvanceToEOL()
	return node, parser.NoChildren
}

func (spanBlockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, segment := reader.PeekLine()
	if !util.IsBlank(line) {
		node.Lines().Append(segment)
	}
	reader.AdvanceToEOL()
	return parser.Continue | parser.NoChildren
}

func (spanBlockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {
	src := reader.Source()
	lines := node.Lines()
	kept := text.NewSegments()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		seg = seg.TrimLeftSpace(src)
		if !seg.IsEmpty() {
			kept.Append(seg)
		}
	}
	if kept.Len() == 0 {
		node.Parent().RemoveChild(node.Parent(), node)
		return
	}
	last := kept.At(kept.Len() - 1)
	kept.Set(kept.Len()-1, last.TrimRightSpace(src))
	node.SetLines(kept)
}

func (spanBlockParser) CanInterruptParagraph() bool {
	return false
}

func (spanBlockParser) CanAcceptIndentedLine() bool {
	return true
}

// CaptionRenderer turns a raw caption value into figcaption content.
type CaptionRenderer struct {
	parser *InlineOnlyParser
}

// NewCaptionRenderer creates a CaptionRenderer backed by p.
func NewCaptionRenderer(p *InlineOnlyParser) *CaptionRenderer {
	return &CaptionRenderer{parser: p}
}

// Render percent-decodes raw and renders it as inline Markdown.
// The boolean is false when there is no caption to emit.
// If the inline parse fails, the decoded text is returned HTML-escaped.
func (r *CaptionRenderer) Render(raw string) (string, bool) {
	src := decodeCaption(raw)
	if strings.TrimSpace(src) == "" {
		return "", false
	}

	out, err := r.parser.Render(src)
	if err != nil {
		return html.EscapeString(src), true
	}
	return out, true
}

// decodeCaption undoes percent-encoding. Malformed escapes leave the value as written.
func decodeCaption(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
