package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdfigure/internal/config"
)

// ErrUsage marks command line errors.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags that control the CLI itself.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	version bool
	help    bool
}

// highlightFlags holds fenced block flags.
type highlightFlags struct {
	lang     string
	guess    bool
	disabled bool
	cssClass string
	style    string
	plain    bool
}

// markdownFlags holds document rendering flags.
type markdownFlags struct {
	unsafe       bool
	hardWraps    bool
	rewriteLinks bool
}

// siteFlags holds the build artifacts written besides the pages.
type siteFlags struct {
	css      string
	manifest string
}

// cliFlags holds all flags.
type cliFlags struct {
	common    commonFlags
	output    string
	workers   int
	highlight highlightFlags
	markdown  markdownFlags
	site      siteFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and fallback blocks")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help and exit")
}

// addHighlightFlags adds fenced block flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.StringVar(&f.lang, "lang", "", "language of fences that name none (\"guess\" = detect)")
	fs.BoolVar(&f.guess, "guess", false, "detect the language of fences that name none")
	fs.BoolVar(&f.disabled, "no-highlight", false, "render every fenced block the default way")
	fs.StringVar(&f.cssClass, "css-class", "", "class of the highlighted block wrapper (default: highlight)")
	fs.StringVar(&f.style, "style", "", "highlight style for --css (default: github)")
	fs.BoolVar(&f.plain, "plain", false, "highlight without figures or captions")
}

// addMarkdownFlags adds document rendering flags to a FlagSet.
func addMarkdownFlags(fs *flag.FlagSet, f *markdownFlags) {
	fs.BoolVar(&f.unsafe, "unsafe", false, "pass raw HTML through")
	fs.BoolVar(&f.hardWraps, "hard-wraps", false, "render newlines in paragraphs as <br>")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "point relative .md links at .html")
}

// addSiteFlags adds build artifact flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.css, "css", "", "write the highlight stylesheet to this file")
	fs.StringVar(&f.manifest, "manifest", "", "write a YAML manifest of rendered pages to this file")
}

// parseFlags parses the command line (without the program name) and
// returns positional args.
func parseFlags(args []string, usage io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdfigure", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &cliFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addHighlightFlags(fs, &f.highlight)
	addMarkdownFlags(fs, &f.markdown)
	addSiteFlags(fs, &f.site)

	fs.Usage = func() { printUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return f, fs.Args(), nil
}

// mergeFlags applies CLI flags over the config. Set flags win; boolean
// flags can only switch a feature on.
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.highlight.lang != "" {
		cfg.Highlight.DefaultLanguage = f.highlight.lang
	}
	if f.highlight.guess {
		cfg.Highlight.GuessLanguage = true
	}
	if f.highlight.disabled {
		cfg.Highlight.Disabled = true
	}
	if f.highlight.cssClass != "" {
		cfg.Highlight.CSSClass = f.highlight.cssClass
	}
	if f.highlight.style != "" {
		cfg.Highlight.Style = f.highlight.style
	}
	if f.highlight.plain {
		cfg.Highlight.Plain = true
	}

	if f.markdown.unsafe {
		cfg.Markdown.Unsafe = true
	}
	if f.markdown.hardWraps {
		cfg.Markdown.HardWraps = true
	}
	if f.markdown.rewriteLinks {
		cfg.Markdown.RewriteLinks = true
	}

	if f.site.css != "" {
		cfg.Site.StyleSheet = f.site.css
	}
	if f.site.manifest != "" {
		cfg.Site.Manifest = f.site.manifest
	}
}
