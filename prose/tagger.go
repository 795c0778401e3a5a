// Package prose provides a prose/v2-backed implementation of sift.Tagger.
package prose

import (
	"github.com/emezenwere/sift"
	"github.com/jdkato/prose/v2"
)

// Ensure Tagger implements sift.Tagger at compile time.
var _ sift.Tagger = (*Tagger)(nil)

// Tagger tags tokens and segments sentences using the prose NLP library.
// Its tags follow the Penn Treebank convention, so proper nouns surface as
// NNP/NNPS exactly as the heuristics in the root package expect.
//
// Construct one Tagger per process and share it; prose documents are
// created per call, so the Tagger is safe for concurrent use.
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// Tag tokenizes and tags text. Malformed input degrades to no tokens.
func (t *Tagger) Tag(text string) []sift.TaggedWord {
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil
	}

	tokens := doc.Tokens()
	tagged := make([]sift.TaggedWord, 0, len(tokens))
	for _, tok := range tokens {
		tagged = append(tagged, sift.TaggedWord{Word: tok.Text, Tag: tok.Tag})
	}
	return tagged
}

// Sentences splits text into sentences. Malformed input degrades to no
// sentences.
func (t *Tagger) Sentences(text string) []string {
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil
	}

	sents := doc.Sentences()
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		out = append(out, s.Text)
	}
	return out
}
