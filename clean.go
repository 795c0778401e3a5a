package sift

import (
	"strings"
	"unicode"
)

// CleanText normalizes a raw text fragment into a canonical comma-joined
// sentence form: the text is split into sentences, every rune that is not a
// letter, digit, or space is replaced with a space, each sentence is trimmed,
// and the sentences are rejoined with "," (no space).
//
// Empty input yields empty output. Malformed input degrades to an empty or
// near-empty string; CleanText never fails.
func CleanText(tagger Tagger, text string) string {
	if text == "" {
		return ""
	}

	sentences := tagger.Sentences(text)
	cleaned := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		cleaned = append(cleaned, strings.TrimSpace(stripSpecial(sentence)))
	}
	return strings.Join(cleaned, ",")
}

// stripSpecial replaces every rune outside [letter, digit, space] with a
// single space.
func stripSpecial(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			return r
		}
		return ' '
	}, s)
}
