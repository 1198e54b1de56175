package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdfigure [flags] <file-or-dir>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render Markdown files to HTML fragments. Fenced code blocks become")
	fmt.Fprintln(w, "<figure> elements with highlighted code and an optional caption:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  ```ruby caption=Parsing%20the%20*config*")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  file-or-dir    Markdown files or directories (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (default: next to source)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "      --lang <s>            Language of fences that name none (\"guess\" = detect)")
	fmt.Fprintln(w, "      --guess               Detect the language of fences that name none")
	fmt.Fprintln(w, "      --no-highlight        Render every fenced block the default way")
	fmt.Fprintln(w, "      --css-class <s>       Class of the highlighted block wrapper (default: highlight)")
	fmt.Fprintln(w, "      --style <s>           Highlight style (default: github)")
	fmt.Fprintln(w, "      --plain               Highlight without figures or captions")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --unsafe              Pass raw HTML through")
	fmt.Fprintln(w, "      --hard-wraps          Render newlines in paragraphs as <br>")
	fmt.Fprintln(w, "      --rewrite-links       Point relative .md links at .html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --css <file>          Write the highlight stylesheet")
	fmt.Fprintln(w, "      --manifest <file>     Write a YAML manifest of rendered pages")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and fallback blocks")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDFIGURE_CONFIG, MDFIGURE_INPUT_DIR, MDFIGURE_OUTPUT_DIR, MDFIGURE_LANG,")
	fmt.Fprintln(w, "  MDFIGURE_STYLE, MDFIGURE_CSS_CLASS, MDFIGURE_GUESS, MDFIGURE_PLAIN,")
	fmt.Fprintln(w, "  MDFIGURE_WORKERS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Precedence: flags > environment > config file > defaults.")
}

// printVersion prints the version line.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "mdfigure %s\n", Version)
}
