// Package fence turns fenced code blocks into captioned, syntax-highlighted
// <figure> elements.
//
// A block is handled in four steps:
//   - the info string is parsed into a language and an optional caption
//   - the caption is rendered as inline-only Markdown
//   - a chroma lexer is resolved and the code is tokenised
//   - the highlighted body and caption are composed into a figure
//
// When a block cannot be highlighted, the converter reports ErrNotHandled
// and writes nothing, leaving the caller to render the block its default way.
// Extension plugs the converter into a goldmark pipeline and performs that
// fallback automatically.
package fence
