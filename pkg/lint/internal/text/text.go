// Package text holds Unicode-aware string helpers shared by the rule
// packages.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold normalizes s for caseless comparison: NFC, full case folding and
// whitespace collapsed to single spaces.
func Fold(s string) string {
	folded := cases.Fold().String(norm.NFC.String(s))
	return strings.Join(strings.Fields(folded), " ")
}

// StripArticle removes a leading "a", "an" or "the" from folded s.
func StripArticle(s string) string {
	for _, art := range []string{"a ", "an ", "the "} {
		if rest, ok := strings.CutPrefix(s, art); ok {
			return rest
		}
	}
	return s
}

// ContainsWord reports whether phrase occurs in s on word boundaries,
// ignoring case.
func ContainsWord(s, phrase string) bool {
	s, phrase = Fold(s), Fold(phrase)
	if phrase == "" {
		return false
	}
	for off := 0; off <= len(s)-len(phrase); {
		i := strings.Index(s[off:], phrase)
		if i < 0 {
			return false
		}
		start, end := off+i, off+i+len(phrase)
		if boundaryBefore(s, start) && boundaryAfter(s, end) {
			return true
		}
		off = start + 1
	}
	return false
}

// Words splits folded s into words with surrounding punctuation removed.
func Words(s string) []string {
	fields := strings.Fields(Fold(s))
	words := fields[:0]
	for _, f := range fields {
		if w := strings.TrimFunc(f, unicode.IsPunct); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
