// Package crack recovers an unknown machine configuration from
// ciphertext alone: a statistical scorer ranks candidate decryptions and
// a two-stage searcher walks the configuration space.
package crack

import (
	"math"

	"github.com/rotorworks/enigma/machine/alphabet"
)

// MinScore is returned for texts too short to carry any statistical
// signal.  It is a defined minimal value, not a failure.
var MinScore = math.Inf(-1)

// Scorer maps a candidate plaintext to a plausibility score; higher
// means more like natural language.  Implementations are pure functions
// of (model, text) and safe for concurrent use.
type Scorer interface {
	Score(text string) float64
}

// Bigram scores text by summing log10 probabilities of adjacent letter
// pairs under a model trained offline on English prose.  Non-letters
// are skipped, so bigrams bridge across spaces and punctuation.  It is
// sensitive to single-letter edits, which is what the plugboard hill
// climb needs.
type Bigram struct{}

// Score implements Scorer.
func (Bigram) Score(text string) float64 {
	sum := 0.0
	pairs := 0
	prev := -1
	for _, r := range text {
		i, ok := alphabet.Index(r)
		if !ok {
			continue
		}
		if prev >= 0 {
			sum += bigramLogProb[prev][i]
			pairs++
		}
		prev = i
	}
	if pairs == 0 {
		return MinScore
	}
	return sum
}

// IndexOfCoincidence scores text by the probability that two randomly
// chosen letters coincide.  English sits near 0.066, uniformly random
// letters near 0.038.  Cheaper than the bigram model but blind to
// letter order.
type IndexOfCoincidence struct{}

// Score implements Scorer.
func (IndexOfCoincidence) Score(text string) float64 {
	var counts [alphabet.Size]int
	n := 0
	for _, r := range text {
		if i, ok := alphabet.Index(r); ok {
			counts[i]++
			n++
		}
	}
	if n < 2 {
		return MinScore
	}
	sum := 0
	for _, c := range counts {
		sum += c * (c - 1)
	}
	return float64(sum) / float64(n*(n-1))
}
