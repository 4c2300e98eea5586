// Package permutation provides the invertible index mappings that every
// machine component is built from.  A permutation of size n rearranges
// the identity sequence [0, 1, ..., n-1]; the inverse mapping is
// precomputed so both directions are O(1) lookups.
package permutation

import (
	"errors"
	"fmt"
)

// ErrInvalidPermutation indicates that a sequence or swap set does not
// describe a permutation.
var ErrInvalidPermutation = errors.New("invalid permutation")

// Permutation is a total bijection over [0, n).
type Permutation struct {
	forward  []int
	backward []int
}

// Identity returns the identity permutation of size n.
func Identity(n int) Permutation {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	return fromSequenceUnchecked(seq)
}

// FromSequence builds a permutation from seq, where seq[i] is the image
// of i.  It fails if seq is not a bijection over [0, len(seq)).
func FromSequence(seq []int) (Permutation, error) {
	seen := make([]bool, len(seq))
	for _, v := range seq {
		if v < 0 || v >= len(seq) {
			return Permutation{}, fmt.Errorf("%w: value %d out of range", ErrInvalidPermutation, v)
		}
		if seen[v] {
			return Permutation{}, fmt.Errorf("%w: value %d repeated", ErrInvalidPermutation, v)
		}
		seen[v] = true
	}
	forward := make([]int, len(seq))
	copy(forward, seq)
	return fromSequenceUnchecked(forward), nil
}

// FromSwaps builds an involution of size n from disjoint index pairs.
// Indices not mentioned map to themselves.  It fails if a pair is out of
// range, degenerate, or shares an index with another pair.
func FromSwaps(n int, pairs [][2]int) (Permutation, error) {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	used := make([]bool, n)
	for _, p := range pairs {
		a, b := p[0], p[1]
		if a < 0 || a >= n || b < 0 || b >= n {
			return Permutation{}, fmt.Errorf("%w: swap (%d, %d) out of range", ErrInvalidPermutation, a, b)
		}
		if a == b {
			return Permutation{}, fmt.Errorf("%w: swap (%d, %d) is degenerate", ErrInvalidPermutation, a, b)
		}
		if used[a] || used[b] {
			return Permutation{}, fmt.Errorf("%w: swap (%d, %d) overlaps another pair", ErrInvalidPermutation, a, b)
		}
		used[a], used[b] = true, true
		seq[a], seq[b] = b, a
	}
	return fromSequenceUnchecked(seq), nil
}

func fromSequenceUnchecked(forward []int) Permutation {
	backward := make([]int, len(forward))
	for i, v := range forward {
		backward[v] = i
	}
	return Permutation{forward: forward, backward: backward}
}

// Size returns the number of elements the permutation acts on.
func (p Permutation) Size() int {
	return len(p.forward)
}

// Apply returns the image of i.
func (p Permutation) Apply(i int) int {
	return p.forward[i]
}

// Invert returns the preimage of i.
func (p Permutation) Invert(i int) int {
	return p.backward[i]
}

// Compose returns the permutation equal to applying p first and q
// second, so Compose(p, q).Apply(i) == q.Apply(p.Apply(i)).  The sizes
// must match.
func (p Permutation) Compose(q Permutation) (Permutation, error) {
	if p.Size() != q.Size() {
		return Permutation{}, fmt.Errorf("%w: size mismatch %d != %d", ErrInvalidPermutation, p.Size(), q.Size())
	}
	seq := make([]int, p.Size())
	for i := range seq {
		seq[i] = q.forward[p.forward[i]]
	}
	return fromSequenceUnchecked(seq), nil
}

// MaxCycleLen returns the length of the longest cycle in p.  An
// involution has no cycle longer than 2.
func (p Permutation) MaxCycleLen() int {
	visited := make([]bool, len(p.forward))
	max := 0
	for i := range p.forward {
		if visited[i] {
			continue
		}
		length := 0
		for j := i; !visited[j]; j = p.forward[j] {
			visited[j] = true
			length++
		}
		if length > max {
			max = length
		}
	}
	return max
}

// HasFixedPoint reports whether any index maps to itself.
func (p Permutation) HasFixedPoint() bool {
	for i, v := range p.forward {
		if i == v {
			return true
		}
	}
	return false
}

// Builder assembles a permutation by swapping elements of the identity.
type Builder struct {
	seq []int
}

// NewBuilder returns a builder holding the identity permutation of
// size n.
func NewBuilder(n int) *Builder {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	return &Builder{seq: seq}
}

// Swap exchanges the values at positions i and j.
func (b *Builder) Swap(i, j int) *Builder {
	b.seq[i], b.seq[j] = b.seq[j], b.seq[i]
	return b
}

// Build returns the accumulated permutation.
func (b *Builder) Build() Permutation {
	forward := make([]int, len(b.seq))
	copy(forward, b.seq)
	return fromSequenceUnchecked(forward)
}
