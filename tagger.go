package sift

import "strings"

// TaggedWord is a single token paired with its grammatical category.
// Tags follow the Penn Treebank convention: "NNP"/"NNPS" for proper nouns,
// any "NN"-prefixed tag for nouns in general.
type TaggedWord struct {
	Word string
	Tag  string
}

// IsProperNoun reports whether the token is tagged as a proper noun.
func (w TaggedWord) IsProperNoun() bool {
	return w.Tag == "NNP" || w.Tag == "NNPS"
}

// IsNoun reports whether the token is tagged as any noun category.
func (w TaggedWord) IsNoun() bool {
	return strings.HasPrefix(w.Tag, "NN")
}

// Tagger provides the natural-language capabilities the extraction
// heuristics depend on: part-of-speech tagging and sentence segmentation.
//
// Implementations must be safe for concurrent use and must degrade to empty
// output on malformed input rather than failing; the heuristics built on
// top are total functions. A Tagger is expected to be constructed once at
// startup (model loading may be expensive) and injected where needed.
type Tagger interface {
	// Tag tokenizes text and returns each token with its grammatical tag,
	// in order of appearance.
	Tag(text string) []TaggedWord

	// Sentences splits text into sentences, in order of appearance.
	Sentences(text string) []string
}
