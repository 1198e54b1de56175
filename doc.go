// Package mdfigure renders Markdown to HTML with every fenced code block
// wrapped in a <figure>: the highlighted code first, then an optional
// <figcaption> taken from the fence's info string.
//
// # Quick Start
//
//	r, err := mdfigure.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := r.Render(ctx, mdfigure.Input{
//	    Markdown: "```go caption=The *entry* point\nfunc main() {}\n```\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.HTML)
//
// # Info Strings
//
// The first word after the opening fence names the language. A caption is
// given with caption=TEXT anywhere after it and ends at the next '&'. The
// text is percent-decoded and rendered as inline Markdown only: emphasis,
// code spans, links and images are allowed, paragraphs and lists are not.
//
//	```ruby caption=Parsing%20the%20*config*
//	```python caption=Setup&nohl
//
// A block whose language cannot be resolved, or that opts out with nohl or
// highlight=false, keeps goldmark's default <pre><code> rendering and is
// reported in Result.Fallbacks.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := mdfigure.NewRenderer(
//	    mdfigure.WithDefaultLanguage("go"),
//	    mdfigure.WithGuessLanguage(),
//	    mdfigure.WithStyle("monokai"),
//	    mdfigure.WithCSSClass("code"),
//	)
//
// Invalid options are reported by NewRenderer, before any document is read.
// The markup uses CSS classes; WriteStyleSheet writes the matching rules.
//
// # Front Matter
//
// A leading YAML block delimited by "---" lines is removed from the output
// and decoded into Result.Page: title, date, categories, icon, series and part.
//
// # Concurrency
//
// A Renderer is immutable after NewRenderer and safe for concurrent use.
// Each Render call keeps its own fallback list.
package mdfigure
