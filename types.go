package mdfigure

import (
	"time"

	"github.com/alnah/go-mdfigure/internal/fence"
	"github.com/alnah/go-mdfigure/internal/page"
)

// Input contains rendering parameters.
type Input struct {
	Markdown string // Markdown content, optionally with YAML front matter (required)
	Name     string // Source name used in error messages (optional)
}

// Result is a rendered document.
type Result struct {
	// HTML is the body fragment, without <html> or <head>.
	HTML string

	// Page is the decoded front matter, zero when there is none.
	Page PageMeta

	// Fallbacks lists the fenced blocks that kept the default code rendering,
	// in document order.
	Fallbacks []Fallback
}

// Fallback describes a fenced block rendered without a figure.
type Fallback struct {
	Line     int    // 1-based line of the opening fence in Input.Markdown
	Language string // Language token from the info string, possibly empty
	Reason   error  // Matches ErrNotHandled and one of its reasons
}

// PageMeta is the front matter of a document.
type PageMeta struct {
	Title      string
	Date       time.Time
	Categories []string // categories and category merged, duplicates removed
	Icon       string
	Series     string
	Part       int

	// Category is the single category the page is filed under.
	Category string
}

// InSeries reports whether the page is part of a series.
func (m PageMeta) InSeries() bool {
	return m.Series != ""
}

func toPageMeta(m page.Meta) PageMeta {
	return PageMeta{
		Title:      m.Title,
		Date:       m.Date,
		Categories: m.CategoryList(),
		Icon:       m.Icon,
		Series:     m.Series,
		Part:       m.Part,
		Category:   m.CanonicalCategory(),
	}
}

func toFallbacks(in []fence.Fallback, lineOffset int) []Fallback {
	if len(in) == 0 {
		return nil
	}
	out := make([]Fallback, len(in))
	for i, f := range in {
		out[i] = Fallback{
			Line:     f.Line + lineOffset,
			Language: f.Language,
			Reason:   f.Err,
		}
	}
	return out
}
