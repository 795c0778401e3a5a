package sift

import "strings"

// DefaultTitleSeparator is the separator character assumed by the
// "<page> | <company>" title idiom that ResolveCompanyName handles.
const DefaultTitleSeparator = "|"

// PhraseAnalysis classifies a short phrase by proper-noun density.
// Transient: produced and consumed within company-name resolution only.
type PhraseAnalysis struct {
	// Phrase is the extracted candidate: the space-joined proper nouns,
	// or the sole token when the phrase is a single noun. Empty means no
	// candidate could be extracted.
	Phrase string

	// ProperNouns is the number of tokens tagged as proper nouns.
	// Always <= Tokens.
	ProperNouns int

	// Tokens is the total token count of the phrase.
	Tokens int
}

// FullyProper reports whether every token in a non-empty phrase is tagged
// as a proper noun. A fully proper phrase is a strong company-name signal.
func (a PhraseAnalysis) FullyProper() bool {
	return a.Tokens > 0 && a.ProperNouns == a.Tokens
}

// AnalyzePhrase tokenizes and tags a phrase and extracts a company-name
// candidate from it. If the phrase contains proper nouns they form the
// candidate; a single token tagged as any noun category is a weak fallback
// candidate (e.g. "Home"); mixed common text yields no candidate.
func AnalyzePhrase(tagger Tagger, phrase string) PhraseAnalysis {
	tagged := tagger.Tag(phrase)

	var proper []string
	for _, word := range tagged {
		if word.IsProperNoun() {
			proper = append(proper, word.Word)
		}
	}

	if len(proper) > 0 {
		return PhraseAnalysis{
			Phrase:      strings.Join(proper, " "),
			ProperNouns: len(proper),
			Tokens:      len(tagged),
		}
	}

	if len(tagged) == 1 && tagged[0].IsNoun() {
		return PhraseAnalysis{Phrase: tagged[0].Word, Tokens: 1}
	}

	return PhraseAnalysis{Tokens: len(tagged)}
}

// ResolveCompanyName decides which half of a two-part page title is the
// company name. The title must split on the separator into exactly two
// parts; anything else returns "" (the heuristic only handles the common
// "<page> | <company>" and "<company> | <tagline>" idioms).
//
// Decision policy, in order:
//  1. Both sides fully proper: the side with fewer tokens wins (companies
//     are named more tersely than taglines); ties prefer the left side.
//  2. Exactly one side fully proper: that side wins.
//  3. Neither side fully proper: fewer tokens wins, same tie-break.
//
// Total over any input; the worst case returns "" (e.g. when the winning
// side yielded no candidate phrase).
func ResolveCompanyName(tagger Tagger, title string, separator string) string {
	if separator == "" {
		separator = DefaultTitleSeparator
	}

	parts := strings.Split(title, separator)
	if len(parts) != 2 {
		return ""
	}

	left := AnalyzePhrase(tagger, strings.TrimSpace(parts[0]))
	right := AnalyzePhrase(tagger, strings.TrimSpace(parts[1]))

	switch {
	case left.FullyProper() && right.FullyProper():
		return shorterPhrase(left, right)
	case left.FullyProper():
		return left.Phrase
	case right.FullyProper():
		return right.Phrase
	}
	return shorterPhrase(left, right)
}

// shorterPhrase returns the candidate with fewer tokens, preferring left
// on ties.
func shorterPhrase(left, right PhraseAnalysis) string {
	if right.Tokens < left.Tokens {
		return right.Phrase
	}
	return left.Phrase
}
