package main

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alnah/go-mdfigure"
	"github.com/alnah/go-mdfigure/internal/fileutil"
	"github.com/alnah/go-mdfigure/internal/page"
	"github.com/alnah/go-mdfigure/internal/yamlutil"
)

// manifestDateLayout is the layout of page dates in the manifest.
const manifestDateLayout = "2006-01-02"

// ErrWriteManifest marks a manifest that could not be encoded or written.
var ErrWriteManifest = errors.New("failed to write manifest")

// Manifest describes a rendered site: its pages and how they link up.
type Manifest struct {
	Generated  time.Time          `yaml:"generated"`
	Pages      []ManifestPage     `yaml:"pages"`
	Series     []ManifestSeries   `yaml:"series,omitempty"`
	Categories []ManifestCategory `yaml:"categories,omitempty"`
}

// ManifestPage is one rendered file.
type ManifestPage struct {
	Source    string `yaml:"source"`
	Output    string `yaml:"output"`
	Title     string `yaml:"title,omitempty"`
	Date      string `yaml:"date,omitempty"`
	Category  string `yaml:"category"`
	Series    string `yaml:"series,omitempty"`
	Part      int    `yaml:"part,omitempty"`
	Previous  string `yaml:"previous,omitempty"`
	Next      string `yaml:"next,omitempty"`
	Fallbacks int    `yaml:"fallbacks,omitempty"`
}

// ManifestSeries lists the outputs of a series in part order.
type ManifestSeries struct {
	Name  string   `yaml:"name"`
	Parts []string `yaml:"parts"`
}

// ManifestCategory lists the outputs filed under a category.
type ManifestCategory struct {
	Name  string   `yaml:"name"`
	Pages []string `yaml:"pages"`
}

// buildManifest indexes the successful results. Regular pages come first,
// newest first, followed by each series in name order.
func buildManifest(results []RenderResult, now time.Time) *Manifest {
	byPath := make(map[string]RenderResult, len(results))
	var pages []page.Page
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		byPath[r.InputPath] = r
		pages = append(pages, page.Page{Path: r.InputPath, Meta: toMeta(r.Page)})
	}

	idx := page.NewIndex(pages)
	m := &Manifest{Generated: now.UTC().Truncate(time.Second)}
	output := func(p page.Page) string { return byPath[p.Path].OutputPath }

	entry := func(p page.Page) ManifestPage {
		r := byPath[p.Path]
		e := ManifestPage{
			Source:    r.InputPath,
			Output:    r.OutputPath,
			Title:     p.Meta.Title,
			Category:  p.Meta.CanonicalCategory(),
			Series:    p.Meta.Series,
			Part:      p.Meta.Part,
			Fallbacks: len(r.Fallbacks),
		}
		if !p.Meta.Date.IsZero() {
			e.Date = p.Meta.Date.Format(manifestDateLayout)
		}
		if prev, ok := idx.PreviousPart(p); ok {
			e.Previous = output(prev)
		}
		if next, ok := idx.NextPart(p); ok {
			e.Next = output(next)
		}
		return e
	}

	for _, p := range idx.Regular() {
		m.Pages = append(m.Pages, entry(p))
	}
	for _, name := range idx.SeriesNames() {
		s := ManifestSeries{Name: name}
		for _, p := range idx.Series(name) {
			m.Pages = append(m.Pages, entry(p))
			s.Parts = append(s.Parts, output(p))
		}
		m.Series = append(m.Series, s)
	}

	groups := idx.ByCategory()
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := ManifestCategory{Name: name}
		for _, p := range groups[name] {
			c.Pages = append(c.Pages, output(p))
		}
		m.Categories = append(m.Categories, c)
	}

	return m
}

// writeManifest encodes the manifest as YAML and writes it atomically.
func writeManifest(path string, m *Manifest) error {
	data, err := yamlutil.Marshal(m)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteManifest, err)
	}
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteManifest, err)
	}
	return nil
}

func toMeta(m mdfigure.PageMeta) page.Meta {
	return page.Meta{
		Title:      m.Title,
		Date:       m.Date,
		Categories: page.Categories(m.Categories),
		Icon:       m.Icon,
		Series:     m.Series,
		Part:       m.Part,
	}
}
