package fence

import (
	"bytes"
	"errors"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// rendererPriority beats goldmark's HTML renderer (1000) and
// goldmark-highlighting (200).
const rendererPriority = 100

// Fallback records a block that was rendered by the default code renderer.
type Fallback struct {
	// Line is the 1-based line of the opening fence in the source.
	Line int

	// Language is the block's language token, possibly empty.
	Language string

	// Err wraps ErrNotHandled and tells why the block fell back.
	Err error
}

// Extension plugs a Converter into goldmark as the fenced code block renderer.
type Extension struct {
	converter   *Converter
	onFallback  func(Fallback)
	htmlOptions []html.Option
}

// ExtensionOption configures an Extension.
type ExtensionOption func(*Extension)

// WithFallbackHandler registers fn to be called for every block rendered
// the default way. fn is called synchronously during rendering.
func WithFallbackHandler(fn func(Fallback)) ExtensionOption {
	return func(e *Extension) {
		e.onFallback = fn
	}
}

// WithHTMLOptions sets the options of the default code renderer used for fallbacks.
func WithHTMLOptions(opts ...html.Option) ExtensionOption {
	return func(e *Extension) {
		e.htmlOptions = append(e.htmlOptions, opts...)
	}
}

// NewExtension creates a goldmark extension backed by c.
func NewExtension(c *Converter, opts ...ExtensionOption) *Extension {
	e := &Extension{converter: c}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newBlockRenderer(e), rendererPriority),
	))
}

// blockRenderer renders fenced code blocks as figures and delegates
// unhandled blocks to goldmark's own fenced code renderer.
type blockRenderer struct {
	converter  *Converter
	onFallback func(Fallback)
	fallback   renderer.NodeRendererFunc
}

func newBlockRenderer(e *Extension) *blockRenderer {
	capture := &funcCapture{kind: ast.KindFencedCodeBlock}
	html.NewRenderer(e.htmlOptions...).RegisterFuncs(capture)

	return &blockRenderer{
		converter:  e.converter,
		onFallback: e.onFallback,
		fallback:   capture.fn,
	}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *blockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *blockRenderer) renderFencedCodeBlock(
	w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	b := blockOf(n, source)
	err := r.converter.Render(w, b)
	if err == nil {
		_ = w.WriteByte('\n')
		return ast.WalkContinue, nil
	}
	if !errors.Is(err, ErrNotHandled) {
		return ast.WalkStop, err
	}

	if r.onFallback != nil {
		r.onFallback(Fallback{
			Line:     fenceLine(n, source),
			Language: ParseInfo(b.Info).Language,
			Err:      err,
		})
	}

	// The default renderer writes its closing tags on exit, which this
	// renderer owns, so both halves run here.
	if _, err := r.fallback(w, source, n, true); err != nil {
		return ast.WalkStop, err
	}
	return r.fallback(w, source, n, false)
}

// blockOf extracts the code and info string of a fenced block.
func blockOf(n *ast.FencedCodeBlock, source []byte) Block {
	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(source))
	}

	var info string
	if n.Info != nil {
		info = string(n.Info.Segment.Value(source))
	}
	return Block{Code: code.String(), Info: info}
}

// fenceLine returns the 1-based source line of the opening fence, or 0 when unknown.
func fenceLine(n *ast.FencedCodeBlock, source []byte) int {
	if n.Info != nil {
		return lineAt(source, n.Info.Segment.Start)
	}
	if n.Lines().Len() > 0 {
		return lineAt(source, n.Lines().At(0).Start) - 1
	}
	return 0
}

func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

// funcCapture records the render function another NodeRenderer registers for kind.
type funcCapture struct {
	kind ast.NodeKind
	fn   renderer.NodeRendererFunc
}

func (c *funcCapture) Register(kind ast.NodeKind, fn renderer.NodeRendererFunc) {
	if kind == c.kind {
		c.fn = fn
	}
}
