package pipeline

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// markdownExtensions are the source extensions rewritten to .html.
var markdownExtensions = []string{".md", ".markdown"}

// RewriteMarkdownLinks points relative links to Markdown sources at their
// rendered .html siblings, keeping any query or fragment.
//
// Rewrites:
//   - a[href]: relative paths ending in .md or .markdown
//
// Leaves alone:
//   - URLs, protocol-relative and absolute paths
//   - anchors and links to other file types
//   - code blocks, which carry no anchors
func RewriteMarkdownLinks(htmlContent string) (string, error) {
	if !strings.Contains(htmlContent, "<a ") {
		return htmlContent, nil
	}

	doc, err := parseFragment(htmlContent)
	if err != nil {
		return "", err
	}

	if !rewriteNode(doc) {
		return htmlContent, nil
	}

	return renderFragment(doc)
}

// parseFragment parses HTML in a body context and gathers the nodes under
// a single container for traversal.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders the container's children without an <html><body> wrapper.
func renderFragment(doc *html.Node) (string, error) {
	var buf strings.Builder
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteNode traverses the DOM and reports whether any link changed.
func rewriteNode(n *html.Node) bool {
	changed := false
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if href, ok := rewriteHref(attr.Val); ok {
				n.Attr[i].Val = href
				changed = true
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteNode(c) {
			changed = true
		}
	}
	return changed
}

// rewriteHref maps "guide/intro.md#setup" to "guide/intro.html#setup".
func rewriteHref(href string) (string, bool) {
	if !isRelativePath(href) {
		return "", false
	}

	cut := len(href)
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		cut = i
	}
	p, suffix := href[:cut], href[cut:]

	ext := path.Ext(p)
	for _, md := range markdownExtensions {
		if strings.EqualFold(ext, md) {
			return strings.TrimSuffix(p, ext) + ".html" + suffix, true
		}
	}
	return "", false
}

// isRelativePath returns true if the path should be rewritten.
func isRelativePath(p string) bool {
	if p == "" {
		return false
	}

	// Skip URLs (any scheme) and protocol-relative references
	if strings.HasPrefix(p, "//") {
		return false
	}
	if i := strings.IndexByte(p, ':'); i >= 0 && !strings.ContainsAny(p[:i], "/?#") {
		return false
	}

	// Skip anchors
	if strings.HasPrefix(p, "#") {
		return false
	}

	// Skip absolute paths
	return !strings.HasPrefix(p, "/")
}
