package prose_test

import (
	"testing"

	"github.com/emezenwere/sift/prose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaggerTag(t *testing.T) {
	t.Parallel()

	tagger := prose.NewTagger()

	t.Run("tags personal names as proper nouns", func(t *testing.T) {
		t.Parallel()

		tagged := tagger.Tag("John Smith")

		require.Len(t, tagged, 2)
		assert.Equal(t, "John", tagged[0].Word)
		assert.True(t, tagged[0].IsProperNoun())
		assert.True(t, tagged[1].IsProperNoun())
	})

	t.Run("tags common words as non-proper", func(t *testing.T) {
		t.Parallel()

		tagged := tagger.Tag("the quick brown fox")

		require.NotEmpty(t, tagged)
		for _, word := range tagged {
			assert.False(t, word.IsProperNoun(), "word %q tag %q", word.Word, word.Tag)
		}
	})

	t.Run("returns nothing for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tagger.Tag(""))
	})
}

func TestTaggerSentences(t *testing.T) {
	t.Parallel()

	tagger := prose.NewTagger()

	t.Run("splits on sentence boundaries", func(t *testing.T) {
		t.Parallel()

		sentences := tagger.Sentences("Hello, world! This is a test.")

		assert.Len(t, sentences, 2)
	})

	t.Run("keeps a single sentence intact", func(t *testing.T) {
		t.Parallel()

		sentences := tagger.Sentences("A single sentence without drama")

		require.Len(t, sentences, 1)
		assert.Equal(t, "A single sentence without drama", sentences[0])
	})

	t.Run("returns nothing for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, tagger.Sentences(""))
	})
}
