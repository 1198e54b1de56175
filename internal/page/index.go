package page

import (
	"sort"
)

// Page is a rendered source file and its metadata.
type Page struct {
	// Path identifies the page, typically its source path.
	Path string
	Meta Meta
}

// Index answers navigation queries over a fixed set of pages.
// It is read-only after NewIndex and safe for concurrent use.
type Index struct {
	pages    []Page
	bySeries map[string][]Page
}

// NewIndex builds an Index. The input slice is copied.
func NewIndex(pages []Page) *Index {
	x := &Index{
		pages:    append([]Page(nil), pages...),
		bySeries: make(map[string][]Page),
	}
	for _, p := range x.pages {
		if p.Meta.InSeries() {
			x.bySeries[p.Meta.Series] = append(x.bySeries[p.Meta.Series], p)
		}
	}
	for _, parts := range x.bySeries {
		sort.SliceStable(parts, func(i, j int) bool {
			if parts[i].Meta.Part != parts[j].Meta.Part {
				return parts[i].Meta.Part < parts[j].Meta.Part
			}
			return parts[i].Path < parts[j].Path
		})
	}
	return x
}

// Series returns the parts of the named series ordered by part number.
func (x *Index) Series(name string) []Page {
	return append([]Page(nil), x.bySeries[name]...)
}

// SeriesNames returns every series name in sorted order.
func (x *Index) SeriesNames() []string {
	names := make([]string, 0, len(x.bySeries))
	for name := range x.bySeries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PreviousPart returns the part numbered one less than p in p's series.
func (x *Index) PreviousPart(p Page) (Page, bool) {
	return x.part(p, -1)
}

// NextPart returns the part numbered one more than p in p's series.
func (x *Index) NextPart(p Page) (Page, bool) {
	return x.part(p, +1)
}

func (x *Index) part(p Page, delta int) (Page, bool) {
	if !p.Meta.InSeries() || p.Meta.Part == 0 {
		return Page{}, false
	}
	want := p.Meta.Part + delta
	for _, q := range x.bySeries[p.Meta.Series] {
		if q.Meta.Part == want {
			return q, true
		}
	}
	return Page{}, false
}

// Regular returns the pages outside any series, newest first, ties broken by title.
func (x *Index) Regular() []Page {
	var out []Page
	for _, p := range x.pages {
		if !p.Meta.InSeries() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].Meta.Date, out[j].Meta.Date
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return out[i].Meta.Title < out[j].Meta.Title
	})
	return out
}

// ByCategory groups pages under their canonical category, keeping input order.
func (x *Index) ByCategory() map[string][]Page {
	out := make(map[string][]Page)
	for _, p := range x.pages {
		c := p.Meta.CanonicalCategory()
		out[c] = append(out[c], p)
	}
	return out
}
