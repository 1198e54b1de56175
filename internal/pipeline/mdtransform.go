package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// byteOrderMark is stripped from the start of documents saved by some editors.
const byteOrderMark = "\uFEFF"

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor applies transformations before CommonMark conversion.
// It only touches bytes outside the meaning of the text, so fenced code
// reaches the converter exactly as written.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for conversion.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = stripByteOrderMark(content)
	content = normalizeLineEndings(content)
	return content
}

// stripByteOrderMark removes a leading UTF-8 byte order mark.
func stripByteOrderMark(content string) string {
	return strings.TrimPrefix(content, byteOrderMark)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
