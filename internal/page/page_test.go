package page

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestParse - Front Matter Extraction
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		wantMeta Meta
		wantBody string
	}{
		{
			name:     "no front matter",
			src:      "# Title\n\nBody\n",
			wantBody: "# Title\n\nBody\n",
		},
		{
			name: "full front matter",
			src: "---\ntitle: Hello\ndate: 2024-03-01\ncategories: go web\n" +
				"category: tools\nicon: gopher\nseries: intro\npart: 2\n---\n# Hello\n",
			wantMeta: Meta{
				Title:      "Hello",
				Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Categories: Categories{"go", "web"},
				Category:   "tools",
				Icon:       "gopher",
				Series:     "intro",
				Part:       2,
			},
			wantBody: "# Hello\n",
		},
		{
			name:     "categories as list",
			src:      "---\ncategories:\n  - go\n  - yaml\n---\nx\n",
			wantMeta: Meta{Categories: Categories{"go", "yaml"}},
			wantBody: "x\n",
		},
		{
			name:     "unknown keys ignored",
			src:      "---\nlayout: post\ntitle: T\n---\nbody",
			wantMeta: Meta{Title: "T"},
			wantBody: "body",
		},
		{
			name:     "empty front matter",
			src:      "---\n---\nbody\n",
			wantBody: "body\n",
		},
		{
			name:     "unterminated block is body",
			src:      "---\ntitle: T\n",
			wantBody: "---\ntitle: T\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			meta, body, err := Parse([]byte(tt.src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(body) != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if !strings.HasSuffix(tt.src, string(body)) {
				t.Errorf("body %q is not a suffix of the source", body)
			}
			if !meta.Date.Equal(tt.wantMeta.Date) {
				t.Errorf("Date = %v, want %v", meta.Date, tt.wantMeta.Date)
			}
			meta.Date, tt.wantMeta.Date = time.Time{}, time.Time{}
			if !reflect.DeepEqual(meta, tt.wantMeta) {
				t.Errorf("Meta = %+v, want %+v", meta, tt.wantMeta)
			}
		})
	}
}

func TestParse_InvalidFrontMatter(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]byte("---\ntitle: [unclosed\n---\nbody\n"))
	if !errors.Is(err, ErrFrontMatter) {
		t.Errorf("error = %v, want ErrFrontMatter", err)
	}
}

// ---------------------------------------------------------------------------
// TestMeta - Category Rules
// ---------------------------------------------------------------------------

func TestMeta_CategoryList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		meta Meta
		want []string
	}{
		{"none", Meta{}, nil},
		{"list only", Meta{Categories: Categories{"a", "b"}}, []string{"a", "b"}},
		{"single key only", Meta{Category: "c"}, []string{"c"}},
		{"merged", Meta{Categories: Categories{"a"}, Category: "c"}, []string{"a", "c"}},
		{"duplicates dropped", Meta{Categories: Categories{"a", "a"}, Category: "a"}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.meta.CategoryList(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CategoryList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeta_CanonicalCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		meta Meta
		want string
	}{
		{"single category", Meta{Categories: Categories{"go"}, Icon: "gopher"}, "go"},
		{"single category key", Meta{Category: "tools"}, "tools"},
		{"icon when several", Meta{Categories: Categories{"a", "b"}, Icon: "star"}, "star"},
		{"icon when none", Meta{Icon: "star"}, "star"},
		{"series part", Meta{Series: "intro", Part: 1}, CategorySeries},
		{"nothing", Meta{}, CategoryMiscellanea},
		{"several without icon", Meta{Categories: Categories{"a", "b"}}, CategoryMiscellanea},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.meta.CanonicalCategory(); got != tt.want {
				t.Errorf("CanonicalCategory() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIndex - Navigation
// ---------------------------------------------------------------------------

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func testIndex() *Index {
	return NewIndex([]Page{
		{Path: "intro-2.md", Meta: Meta{Title: "Intro 2", Series: "intro", Part: 2}},
		{Path: "old.md", Meta: Meta{Title: "Old", Date: day(1)}},
		{Path: "intro-1.md", Meta: Meta{Title: "Intro 1", Series: "intro", Part: 1}},
		{Path: "b.md", Meta: Meta{Title: "B", Date: day(5)}},
		{Path: "a.md", Meta: Meta{Title: "A", Date: day(5)}},
		{Path: "intro-3.md", Meta: Meta{Title: "Intro 3", Series: "intro", Part: 3}},
		{Path: "other-1.md", Meta: Meta{Title: "Other", Series: "other", Part: 1}},
	})
}

func paths(pages []Page) []string {
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		out = append(out, p.Path)
	}
	return out
}

func TestIndex_Series(t *testing.T) {
	t.Parallel()

	x := testIndex()

	if got, want := paths(x.Series("intro")), []string{"intro-1.md", "intro-2.md", "intro-3.md"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Series(intro) = %v, want %v", got, want)
	}
	if got := x.Series("missing"); len(got) != 0 {
		t.Errorf("Series(missing) = %v, want empty", got)
	}
	if got, want := x.SeriesNames(), []string{"intro", "other"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SeriesNames() = %v, want %v", got, want)
	}
}

func TestIndex_PreviousNextPart(t *testing.T) {
	t.Parallel()

	x := testIndex()
	second := Page{Path: "intro-2.md", Meta: Meta{Series: "intro", Part: 2}}

	prev, ok := x.PreviousPart(second)
	if !ok || prev.Path != "intro-1.md" {
		t.Errorf("PreviousPart() = %q, %v, want intro-1.md", prev.Path, ok)
	}
	next, ok := x.NextPart(second)
	if !ok || next.Path != "intro-3.md" {
		t.Errorf("NextPart() = %q, %v, want intro-3.md", next.Path, ok)
	}

	first := Page{Meta: Meta{Series: "intro", Part: 1}}
	if _, ok := x.PreviousPart(first); ok {
		t.Error("PreviousPart() of first part found a page")
	}
	last := Page{Meta: Meta{Series: "intro", Part: 3}}
	if _, ok := x.NextPart(last); ok {
		t.Error("NextPart() of last part found a page")
	}

	other := Page{Meta: Meta{Series: "other", Part: 1}}
	if p, ok := x.NextPart(other); ok {
		t.Errorf("NextPart() crossed series: %q", p.Path)
	}

	regular := Page{Meta: Meta{Title: "Old"}}
	if _, ok := x.NextPart(regular); ok {
		t.Error("NextPart() of a regular page found a page")
	}
}

func TestIndex_Regular(t *testing.T) {
	t.Parallel()

	got := paths(testIndex().Regular())
	want := []string{"a.md", "b.md", "old.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Regular() = %v, want %v", got, want)
	}
}

func TestIndex_ByCategory(t *testing.T) {
	t.Parallel()

	groups := testIndex().ByCategory()
	if n := len(groups[CategorySeries]); n != 4 {
		t.Errorf("series group has %d pages, want 4", n)
	}
	if n := len(groups[CategoryMiscellanea]); n != 3 {
		t.Errorf("miscellanea group has %d pages, want 3", n)
	}
}
