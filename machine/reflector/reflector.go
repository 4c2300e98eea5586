// Package reflector implements the fixed involutive wiring that turns
// the signal back through the rotors.
package reflector

import (
	"fmt"

	"github.com/rotorworks/enigma/machine/alphabet"
	"github.com/rotorworks/enigma/machine/permutation"
)

// Reflector is a fixed-point-free involution over the alphabet.  The
// construction offset is folded into the wiring once; a reflector never
// steps during operation.
type Reflector struct {
	perm permutation.Permutation
}

// New builds a reflector from a wiring permutation and an initial
// offset.  The offset conjugates the wiring (rotate in by +offset, map,
// rotate out by -offset) and is then forgotten.  The wiring must be an
// involution with no fixed point.
func New(wiring permutation.Permutation, offset int) (Reflector, error) {
	if wiring.Size() != alphabet.Size {
		return Reflector{}, fmt.Errorf("%w: reflector wiring has size %d, want %d",
			permutation.ErrInvalidPermutation, wiring.Size(), alphabet.Size)
	}
	if !alphabet.Valid(offset) {
		return Reflector{}, fmt.Errorf("%w: reflector offset %d out of range",
			permutation.ErrInvalidPermutation, offset)
	}

	seq := make([]int, alphabet.Size)
	for x := range seq {
		seq[x] = (wiring.Apply((x+offset)%alphabet.Size) - offset + alphabet.Size) % alphabet.Size
	}
	folded, err := permutation.FromSequence(seq)
	if err != nil {
		return Reflector{}, err
	}

	if folded.HasFixedPoint() {
		return Reflector{}, fmt.Errorf("%w: reflector wiring maps a letter to itself",
			permutation.ErrInvalidPermutation)
	}
	if folded.MaxCycleLen() != 2 {
		return Reflector{}, fmt.Errorf("%w: reflector wiring is not an involution",
			permutation.ErrInvalidPermutation)
	}
	return Reflector{perm: folded}, nil
}

// Apply reflects x.  Apply(Apply(x)) == x and Apply(x) != x for all x.
func (r Reflector) Apply(x int) int {
	return r.perm.Apply(x)
}
