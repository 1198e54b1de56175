package pipeline

// Notes:
// - Tests RewriteMarkdownLinks through its public API plus rewriteHref
// - html.Render re-serializes the fragment, so assertions use substrings

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRewriteMarkdownLinks - Main Function Tests
// ---------------------------------------------------------------------------

func TestRewriteMarkdownLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		html         string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "relative markdown link rewritten",
			html:         `<p><a href="./other.md">Link</a></p>`,
			wantContains: []string{`href="./other.html"`},
		},
		{
			name:         "nested path with fragment",
			html:         `<a href="guide/intro.md#setup">Setup</a>`,
			wantContains: []string{`href="guide/intro.html#setup"`},
		},
		{
			name:         "markdown extension is case-insensitive",
			html:         `<a href="NOTES.MARKDOWN">Notes</a>`,
			wantContains: []string{`href="NOTES.html"`},
		},
		{
			name:         "anchor link unchanged",
			html:         `<a href="#section">Link</a>`,
			wantContains: []string{`href="#section"`},
		},
		{
			name:         "external link unchanged",
			html:         `<a href="https://example.com/readme.md">External</a>`,
			wantContains: []string{`href="https://example.com/readme.md"`},
		},
		{
			name:         "mailto unchanged",
			html:         `<a href="mailto:me@example.md">Mail</a>`,
			wantContains: []string{`href="mailto:me@example.md"`},
		},
		{
			name:         "protocol-relative URL unchanged",
			html:         `<a href="//cdn.example.com/a.md">CDN</a>`,
			wantContains: []string{`href="//cdn.example.com/a.md"`},
		},
		{
			name:         "absolute path unchanged",
			html:         `<a href="/docs/a.md">Abs</a>`,
			wantContains: []string{`href="/docs/a.md"`},
		},
		{
			name:         "other file types unchanged",
			html:         `<a href="./data.csv">Data</a>`,
			wantContains: []string{`href="./data.csv"`},
		},
		{
			name:         "images untouched",
			html:         `<img src="./diagram.md"/><a href="b.md">b</a>`,
			wantContains: []string{`src="./diagram.md"`, `href="b.html"`},
		},
		{
			name: "figure markup preserved",
			html: `<figure><div class="highlight"><pre class="chroma"><code>x</code></pre></div>` +
				`<figcaption>See <a href="ref.md">ref</a></figcaption></figure>`,
			wantContains: []string{
				`<figure><div class="highlight"><pre class="chroma"><code>x</code></pre></div>`,
				`<figcaption>See <a href="ref.html">ref</a></figcaption></figure>`,
			},
			wantExcludes: []string{"<html>", "<body>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteMarkdownLinks(tt.html)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("output should not contain %q\ngot: %s", exclude, got)
				}
			}
		})
	}
}

func TestRewriteMarkdownLinks_UnchangedInputReturnedVerbatim(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"<p>no links here</p>\n",
		`<p><a href="https://example.com">x</a><br /></p>` + "\n",
	}
	for _, in := range inputs {
		got, err := RewriteMarkdownLinks(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != in {
			t.Errorf("RewriteMarkdownLinks(%q) = %q, want input unchanged", in, got)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRewriteHref - Path Mapping
// ---------------------------------------------------------------------------

func TestRewriteHref(t *testing.T) {
	t.Parallel()

	tests := []struct {
		href   string
		want   string
		wantOK bool
	}{
		{"a.md", "a.html", true},
		{"../up/b.markdown?x=1", "../up/b.html?x=1", true},
		{"dir.md/file.txt", "", false},
		{"c.mdx", "", false},
		{"", "", false},
		{"#top", "", false},
		{"ftp://host/a.md", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			t.Parallel()

			got, ok := rewriteHref(tt.href)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("rewriteHref(%q) = (%q, %v), want (%q, %v)", tt.href, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
