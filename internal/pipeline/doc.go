// Package pipeline implements the Markdown-to-HTML document pipeline.
//
// This package handles the stages around a document render:
//   - Markdown preprocessing (byte order mark, line endings)
//   - Markdown to HTML conversion via Goldmark, with fenced code blocks
//     handed to a fence.Converter
//   - Link rewriting from Markdown sources to their HTML outputs
//
// Fenced blocks the converter declines fall back to Goldmark's own code
// renderer, and each fallback is reported in the conversion Output.
package pipeline
