package crack

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const englishSample = "it was a bright cold day in april and the clocks were striking thirteen"

func TestBigramPrefersEnglish(t *testing.T) {
	var s Bigram

	english := s.Score(englishSample)

	// Reversing keeps the letter multiset and pair count but destroys
	// the bigram structure.
	reversed := reverse(englishSample)
	assert.Greater(t, english, s.Score(reversed))

	sorted := sortLetters(englishSample)
	assert.Greater(t, english, s.Score(sorted))
}

func TestBigramEdgeCases(t *testing.T) {
	var s Bigram

	assert.Equal(t, MinScore, s.Score(""))
	assert.Equal(t, MinScore, s.Score("a"))
	assert.Equal(t, MinScore, s.Score("... 123 ..."))

	// A single bridged pair is enough for a finite score.
	assert.Greater(t, s.Score("a b!"), MinScore)
}

func TestBigramIgnoresCase(t *testing.T) {
	var s Bigram
	assert.Equal(t, s.Score("hello world"), s.Score("Hello World"))
}

func TestBigramBridgesNonLetters(t *testing.T) {
	var s Bigram
	assert.Equal(t, s.Score("abcd"), s.Score("ab cd"))
	assert.Equal(t, s.Score("abcd"), s.Score("a-b c.d"))
}

func TestBigramSensitiveToSingleEdit(t *testing.T) {
	var s Bigram
	assert.Greater(t, s.Score("the cat sat"), s.Score("the cat sxt"))
}

func TestIndexOfCoincidence(t *testing.T) {
	var s IndexOfCoincidence

	// English prose sits well above a flat letter distribution.
	assert.Greater(t, s.Score(englishSample), 0.05)

	// Each letter exactly once: no coinciding pairs at all.
	assert.Equal(t, 0.0, s.Score("abcdefghijklmnopqrstuvwxyz"))

	// A single repeated letter always coincides.
	assert.Equal(t, 1.0, s.Score("aaaa"))
}

func TestIndexOfCoincidenceEdgeCases(t *testing.T) {
	var s IndexOfCoincidence

	assert.Equal(t, MinScore, s.Score(""))
	assert.Equal(t, MinScore, s.Score("a"))
	assert.Equal(t, MinScore, s.Score("a 1!"))
	assert.Greater(t, s.Score("ab"), MinScore)
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func sortLetters(s string) string {
	var letters []string
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			letters = append(letters, string(r))
		}
	}
	sort.Strings(letters)
	return strings.Join(letters, "")
}
