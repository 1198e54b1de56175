package fence

import (
	"regexp"
	"strings"
	"unicode"
)

// captionPattern matches the caption parameter anywhere in the info string.
// The value runs until the next '&' or the end of the string.
var captionPattern = regexp.MustCompile(`caption=([^&]*)`)

// Info is the parsed form of a fenced block's info string.
type Info struct {
	// Language is the leading token up to the first whitespace or '?',
	// possibly empty.
	Language string

	// Caption is the raw, still percent-encoded caption value.
	Caption string

	// HasCaption reports whether a caption parameter was present.
	HasCaption bool

	// Params holds the '&'-separated key[=value] pairs following the language.
	// Bare keys map to the empty string.
	Params map[string]string
}

// ParseInfo splits an info string into language, caption and parameters.
// It never fails: malformed input yields a best-effort result.
func ParseInfo(info string) Info {
	info = strings.TrimSpace(info)
	if info == "" {
		return Info{}
	}

	var out Info

	// Parameters follow the language after whitespace ("ruby caption=X")
	// or a query separator ("ruby?caption=X").
	lang, rest := info, ""
	if i := strings.IndexFunc(info, isLanguageEnd); i >= 0 {
		lang, rest = info[:i], strings.TrimSpace(info[i+1:])
	}
	out.Language = lang

	if m := captionPattern.FindStringSubmatch(info); m != nil {
		out.Caption = m[1]
		out.HasCaption = true
	}

	out.Params = parseParams(rest)
	return out
}

func isLanguageEnd(r rune) bool {
	return r == '?' || unicode.IsSpace(r)
}

// parseParams reads '&'-separated key[=value] pairs.
func parseParams(s string) map[string]string {
	if s == "" {
		return nil
	}
	params := make(map[string]string)
	for _, part := range strings.Split(s, "&") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, seen := params[key]; seen {
			continue
		}
		params[key] = value
	}
	return params
}

// NoHighlight reports whether the block opted out of highlighting with
// a bare "nohl" parameter or "highlight=false".
func (i Info) NoHighlight() bool {
	if _, ok := i.Params["nohl"]; ok {
		return true
	}
	v, ok := i.Params["highlight"]
	return ok && strings.EqualFold(strings.TrimSpace(v), "false")
}
