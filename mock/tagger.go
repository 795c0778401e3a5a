package mock

import (
	"strings"

	"github.com/emezenwere/sift"
)

var _ sift.Tagger = (*Tagger)(nil)

// Tagger is a mock implementation of sift.Tagger.
type Tagger struct {
	TagFn       func(text string) []sift.TaggedWord
	SentencesFn func(text string) []string
}

func (t *Tagger) Tag(text string) []sift.TaggedWord {
	return t.TagFn(text)
}

func (t *Tagger) Sentences(text string) []string {
	return t.SentencesFn(text)
}

// LexiconTagger returns a deterministic Tagger for tests: whitespace
// tokenization with each word's tag looked up in the lexicon ("NN" when
// absent), and sentences split on terminal punctuation.
func LexiconTagger(lexicon map[string]string) *Tagger {
	return &Tagger{
		TagFn: func(text string) []sift.TaggedWord {
			var tagged []sift.TaggedWord
			for _, word := range strings.Fields(text) {
				tag, ok := lexicon[word]
				if !ok {
					tag = "NN"
				}
				tagged = append(tagged, sift.TaggedWord{Word: word, Tag: tag})
			}
			return tagged
		},
		SentencesFn: splitSentences,
	}
}

func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(text[start : i+1]); s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
