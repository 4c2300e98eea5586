package crack

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rotorworks/enigma/machine"
)

func namedCandidate(score float64) Candidate {
	// The config content is irrelevant to the collector; tag it so
	// assertions can tell candidates apart.
	return Candidate{
		Config: machine.Config{Plugboard: []string{fmt.Sprintf("%.0f", score)}},
		Score:  score,
	}
}

func TestTopKUnderCapacity(t *testing.T) {
	c := newTopK(5)
	c.Offer(namedCandidate(-3))
	c.Offer(namedCandidate(-1))
	c.Offer(namedCandidate(-2))

	got := c.Candidates()
	assert.Len(t, got, 3)
	assert.Equal(t, -1.0, got[0].Score)
	assert.Equal(t, -2.0, got[1].Score)
	assert.Equal(t, -3.0, got[2].Score)
}

func TestTopKEvictsWorst(t *testing.T) {
	c := newTopK(3)
	for _, s := range []float64{-10, -20, -30, -5, -40, -1} {
		c.Offer(namedCandidate(s))
	}

	got := c.Candidates()
	assert.Len(t, got, 3)
	assert.Equal(t, -1.0, got[0].Score)
	assert.Equal(t, -5.0, got[1].Score)
	assert.Equal(t, -10.0, got[2].Score)
}

func TestTopKRejectsBelowWorst(t *testing.T) {
	c := newTopK(2)
	c.Offer(namedCandidate(-1))
	c.Offer(namedCandidate(-2))
	c.Offer(namedCandidate(-50))

	got := c.Candidates()
	assert.Len(t, got, 2)
	assert.Equal(t, -1.0, got[0].Score)
	assert.Equal(t, -2.0, got[1].Score)
}
