// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"sort"
	"strings"
)

// maxSuggestions bounds the names listed by ForUnknownLanguage.
const maxSuggestions = 5

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mdfigure/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-mdfigure") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for unknown highlight styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	sorted := append([]string(nil), available...)
	sort.Strings(sorted)
	return format("available: " + strings.Join(sorted, ", "))
}

// ForUnknownLanguage suggests lexer names close to lang, taken from known.
func ForUnknownLanguage(lang string, known []string) string {
	needle := strings.ToLower(strings.TrimSpace(lang))
	if needle == "" {
		return ""
	}

	var matches []string
	for _, name := range known {
		lower := strings.ToLower(name)
		if strings.HasPrefix(lower, needle) || strings.HasPrefix(needle, lower) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	hints := []string{"use --guess to detect the language from code"}
	if len(matches) > 0 {
		if len(matches) > maxSuggestions {
			matches = matches[:maxSuggestions]
		}
		hints = append([]string{"did you mean " + strings.Join(matches, ", ")}, hints...)
	}
	return formatHints(hints)
}

// ForInvalidCSSClass returns the accepted shape of a CSS class name.
func ForInvalidCSSClass() string {
	return format("use a single class name such as highlight or code-block")
}

// ForFallbacks returns hints for documents whose code blocks were left
// unhighlighted because no language could be resolved.
func ForFallbacks(unresolved int, guessEnabled bool) string {
	if unresolved == 0 {
		return ""
	}
	var hints []string
	if !guessEnabled {
		hints = append(hints, "use --guess to detect languages from code")
	}
	hints = append(hints, "name a language after the opening fence")
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
