package crack

import (
	"container/heap"
	"sort"
	"sync"

	"github.com/rotorworks/enigma/machine"
)

// Candidate pairs a configuration with its score for a fixed
// ciphertext.
type Candidate struct {
	Config machine.Config
	Score  float64
}

// candidateHeap is a min-heap on score, so the worst retained candidate
// sits at the root and is evicted first.
type candidateHeap []Candidate

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(Candidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

// topK is the bounded collector the coarse-stage workers merge into.
// The mutex is the single synchronization point; it is contended only
// for the brief insertion of a candidate.
type topK struct {
	mu sync.Mutex
	k  int
	h  candidateHeap
}

func newTopK(k int) *topK {
	return &topK{k: k, h: make(candidateHeap, 0, k+1)}
}

// Offer inserts c if it ranks among the best k seen so far.
func (t *topK) Offer(c Candidate) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.h) < t.k {
		heap.Push(&t.h, c)
		return
	}
	if c.Score <= t.h[0].Score {
		return
	}
	t.h[0] = c
	heap.Fix(&t.h, 0)
}

// Candidates returns the retained candidates, best first.
func (t *topK) Candidates() []Candidate {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Candidate, len(t.h))
	copy(out, t.h)
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
