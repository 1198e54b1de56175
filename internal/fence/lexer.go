package fence

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// PlaintextTag is the canonical tag of the generic grammar.
const PlaintextTag = "plaintext"

// GuessToken used as a language token asks for content-based guessing
// regardless of configuration.
const GuessToken = "guess"

// Lexer is a resolved grammar.
type Lexer struct {
	lexer chroma.Lexer

	// Tag is the lower-cased canonical grammar name, e.g. "ruby" or "plaintext".
	Tag string

	// GuessRequested reports whether guessing was enabled or asked for by the block.
	GuessRequested bool
}

// ResolveLexer picks a grammar for code. The explicit language wins, then
// defaultLanguage, then a guess from the content when guess is true.
// It returns nil when nothing resolves.
func ResolveLexer(language, defaultLanguage string, guess bool, code string) *Lexer {
	name := strings.TrimSpace(language)
	if name == "" {
		name = strings.TrimSpace(defaultLanguage)
	}

	explicitGuess := strings.EqualFold(name, GuessToken)
	if name == "" || explicitGuess {
		if !guess && !explicitGuess {
			return nil
		}
		return newLexer(guessLexer(code), true)
	}

	l := lexers.Get(name)
	if l == nil {
		return nil
	}
	return newLexer(l, guess)
}

// guessLexer analyses code, falling back to the plaintext grammar.
func guessLexer(code string) chroma.Lexer {
	if l := lexers.Analyse(code); l != nil {
		return l
	}
	if l := lexers.Get(PlaintextTag); l != nil {
		return l
	}
	return lexers.Fallback
}

func newLexer(l chroma.Lexer, guessRequested bool) *Lexer {
	tag := strings.ToLower(l.Config().Name)
	if l == lexers.Fallback {
		tag = PlaintextTag
	}
	return &Lexer{lexer: l, Tag: tag, GuessRequested: guessRequested}
}
