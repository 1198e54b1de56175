// Package page reads page metadata from YAML front matter and derives the
// navigation a static site needs: categories, series parts and the list of
// regular posts.
package page

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-mdfigure/internal/yamlutil"
)

// ErrFrontMatter indicates the front matter block could not be decoded.
var ErrFrontMatter = errors.New("invalid front matter")

// Fallback categories for pages that do not name a single one.
const (
	CategorySeries      = "series"
	CategoryMiscellanea = "miscellanea"
)

// yamlFormat is the "---" delimited YAML block at the top of a page.
var yamlFormat = frontmatter.NewFormat("---", "---", unmarshalFrontMatter)

func unmarshalFrontMatter(data []byte, v interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yamlutil.Unmarshal(data, v)
}

// Meta is the front matter of a page. Unknown keys are ignored.
type Meta struct {
	Title      string     `yaml:"title"`
	Date       time.Time  `yaml:"date"`
	Categories Categories `yaml:"categories"`
	Category   string     `yaml:"category"`
	Icon       string     `yaml:"icon"`
	Series     string     `yaml:"series"`
	Part       int        `yaml:"part"`
}

// Categories accepts either a space-separated string or a YAML list.
type Categories []string

// UnmarshalYAML implements goccy/go-yaml's InterfaceUnmarshaler.
func (c *Categories) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		*c = strings.Fields(s)
		return nil
	}

	var list []string
	if err := unmarshal(&list); err != nil {
		return err
	}
	*c = list
	return nil
}

// Parse splits src into front matter and body. Without front matter, Meta
// is zero and body is src unchanged. body is always a suffix of src.
func Parse(src []byte) (Meta, []byte, error) {
	var m Meta
	body, err := frontmatter.Parse(bytes.NewReader(src), &m, yamlFormat)
	if err != nil {
		return Meta{}, nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return m, body, nil
}

// CategoryList merges the categories list with the single category key,
// dropping duplicates and keeping first-seen order.
func (m Meta) CategoryList() []string {
	seen := make(map[string]bool, len(m.Categories)+1)
	var out []string
	for _, c := range append(append([]string(nil), m.Categories...), m.Category) {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// InSeries reports whether the page is part of a series.
func (m Meta) InSeries() bool {
	return m.Series != ""
}

// CanonicalCategory picks the category a page is filed under: its only
// category, else its icon, else "series" for series parts, else "miscellanea".
func (m Meta) CanonicalCategory() string {
	if cats := m.CategoryList(); len(cats) == 1 {
		return cats[0]
	}
	if m.Icon != "" {
		return m.Icon
	}
	if m.InSeries() {
		return CategorySeries
	}
	return CategoryMiscellanea
}
