package words_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/mkeeler/fixture-data/gen/words"
	"github.com/mkeeler/fixture-data/maker"
	"github.com/stretchr/testify/require"
)

func TestWord_Deterministic(t *testing.T) {
	first, err := words.Word("w1")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	for i := 0; i < 20; i++ {
		again, err := words.Word("w1")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestWord_Capitalize(t *testing.T) {
	// Default capitalizes.
	w, err := words.Word("w1")
	require.NoError(t, err)
	r := []rune(w)[0]
	require.True(t, unicode.IsUpper(r))

	lower, err := words.Word("w1", words.WithCapitalize(false))
	require.NoError(t, err)
	require.Equal(t, strings.ToLower(lower[:1]), lower[:1])
}

func TestWord_ASCIIOnly(t *testing.T) {
	for i := 0; i < 100; i++ {
		w, err := words.Word(fmt.Sprintf("w-%d", i), words.WithUnicode(false))
		require.NoError(t, err)
		for _, r := range w {
			require.Less(t, r, rune(128), "unexpected non-ascii rune in %q", w)
		}
	}
}

func TestWord_SyllableBounds(t *testing.T) {
	// One-syllable words are at most onset+nucleus+coda; verify the
	// min/max syllable options keep lengths predictable at the extremes.
	for i := 0; i < 100; i++ {
		short, err := words.Word(fmt.Sprintf("w-%d", i),
			words.WithMinSyllables(1), words.WithMaxSyllables(1), words.WithUnicode(false))
		require.NoError(t, err)
		require.LessOrEqual(t, len(short), 7)

		long, err := words.Word(fmt.Sprintf("w-%d", i),
			words.WithMinSyllables(6), words.WithMaxSyllables(6), words.WithUnicode(false))
		require.NoError(t, err)
		require.Greater(t, len(long), len("aaaaaa"))
	}
}

func TestWord_InvalidSyllables(t *testing.T) {
	_, err := words.Word("w", words.WithMinSyllables(0))
	require.ErrorIs(t, err, maker.ErrConfig)

	_, err = words.Word("w", words.WithMinSyllables(3), words.WithMaxSyllables(2))
	require.ErrorIs(t, err, maker.ErrConfig)
}

func TestWords_CountBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		v, err := words.Words(fmt.Sprintf("ws-%d", i))
		require.NoError(t, err)
		n := len(strings.Fields(v))
		require.GreaterOrEqual(t, n, 2)
		require.LessOrEqual(t, n, 3)
	}
}

func TestWords_Deterministic(t *testing.T) {
	first, err := words.Words("ws", words.WithMinWords(4), words.WithMaxWords(4))
	require.NoError(t, err)
	again, err := words.Words("ws", words.WithMinWords(4), words.WithMaxWords(4))
	require.NoError(t, err)
	require.Equal(t, first, again)
	require.Len(t, strings.Fields(first), 4)
}

func TestSentence_Shape(t *testing.T) {
	for i := 0; i < 50; i++ {
		s, err := words.Sentence(fmt.Sprintf("s-%d", i))
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(s, "."))
		require.True(t, unicode.IsUpper([]rune(s)[0]))

		n := len(strings.Fields(s))
		require.GreaterOrEqual(t, n, 4)
		require.LessOrEqual(t, n, 12)
	}
}

func TestParagraph_Shape(t *testing.T) {
	for i := 0; i < 20; i++ {
		p, err := words.Paragraph(fmt.Sprintf("p-%d", i))
		require.NoError(t, err)

		sentences := strings.Count(p, ".")
		require.GreaterOrEqual(t, sentences, 2)
		require.LessOrEqual(t, sentences, 5)
	}
}

func TestPetName_Shape(t *testing.T) {
	first, err := words.PetName("pn")
	require.NoError(t, err)
	require.Len(t, strings.Split(first, "-"), 2)

	again, err := words.PetName("pn")
	require.NoError(t, err)
	require.Equal(t, first, again)

	four, err := words.PetName("pn", words.WithPetNameWords(4), words.WithSeparator("_"))
	require.NoError(t, err)
	require.Len(t, strings.Split(four, "_"), 4)
}

func TestPetName_InvalidWords(t *testing.T) {
	_, err := words.PetName("pn", words.WithPetNameWords(0))
	require.ErrorIs(t, err, maker.ErrConfig)
}

func TestWordGenerator_With(t *testing.T) {
	base := words.NewWordGenerator(words.WithCapitalize(false))
	bound := base.With(words.WithMinSyllables(5), words.WithMaxSyllables(5))

	long, err := bound.Generate("wg")
	require.NoError(t, err)

	// The original binding is untouched.
	short, err := base.Generate("wg", words.WithMinSyllables(1), words.WithMaxSyllables(1))
	require.NoError(t, err)
	require.Greater(t, len(long), len(short))
}
