// Package plugboard implements the swap stage applied before and after
// the rotor pass.
package plugboard

import (
	"fmt"

	"github.com/rotorworks/enigma/machine/alphabet"
	"github.com/rotorworks/enigma/machine/permutation"
)

// Plugboard is an involution built from disjoint letter-pair swaps.
// Letters without a plug map to themselves.
type Plugboard struct {
	perm permutation.Permutation
}

// New builds a plugboard from index pairs.  Pairs must be disjoint and
// in range; permutation.ErrInvalidPermutation is returned otherwise.
func New(pairs [][2]int) (Plugboard, error) {
	perm, err := permutation.FromSwaps(alphabet.Size, pairs)
	if err != nil {
		return Plugboard{}, err
	}
	return Plugboard{perm: perm}, nil
}

// FromPermutation wraps an existing permutation, enforcing that it is a
// valid plugboard: full alphabet size and no cycle longer than 2.
func FromPermutation(perm permutation.Permutation) (Plugboard, error) {
	if perm.Size() != alphabet.Size {
		return Plugboard{}, fmt.Errorf("%w: plugboard has size %d, want %d",
			permutation.ErrInvalidPermutation, perm.Size(), alphabet.Size)
	}
	if perm.MaxCycleLen() > 2 {
		return Plugboard{}, fmt.Errorf("%w: plugboard is not an involution", permutation.ErrInvalidPermutation)
	}
	return Plugboard{perm: perm}, nil
}

// Apply maps x through the board.  Applying twice returns x.
func (p Plugboard) Apply(x int) int {
	return p.perm.Apply(x)
}
