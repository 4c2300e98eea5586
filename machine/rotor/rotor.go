// Package rotor implements the rotating wheels of the machine and the
// stepping state machine that advances them.
//
// A rotor is a wiring permutation conjugated by its current rotational
// offset: the input index is rotated by +offset, passed through the
// wiring, and the output rotated back by -offset.  The return pass uses
// the inverse wiring with the same conjugation.  A bank groups the three
// rotors and owns the carry rules, including the middle rotor's
// double-step.
package rotor

import (
	"fmt"

	"github.com/rotorworks/enigma/machine/alphabet"
	"github.com/rotorworks/enigma/machine/permutation"
)

// Rotor is one wheel: a wiring, a notch, and a mutable offset.
type Rotor struct {
	wiring permutation.Permutation
	notch  int
	offset int
	ring   int
}

// New builds a rotor from its wiring permutation, notch index, initial
// offset and ring setting.  The wiring must cover the full alphabet and
// notch, offset and ring must be valid alphabet indices.
func New(wiring permutation.Permutation, notch, offset, ring int) (*Rotor, error) {
	if wiring.Size() != alphabet.Size {
		return nil, fmt.Errorf("%w: rotor wiring has size %d, want %d",
			permutation.ErrInvalidPermutation, wiring.Size(), alphabet.Size)
	}
	if !alphabet.Valid(notch) {
		return nil, fmt.Errorf("%w: notch %d out of range", permutation.ErrInvalidPermutation, notch)
	}
	if !alphabet.Valid(offset) {
		return nil, fmt.Errorf("%w: offset %d out of range", permutation.ErrInvalidPermutation, offset)
	}
	if !alphabet.Valid(ring) {
		return nil, fmt.Errorf("%w: ring setting %d out of range", permutation.ErrInvalidPermutation, ring)
	}
	return &Rotor{wiring: wiring, notch: notch, offset: offset, ring: ring}, nil
}

// Offset returns the rotor's current rotational position.
func (r *Rotor) Offset() int {
	return r.offset
}

// Notch returns the offset at which this rotor carries into its left
// neighbour.
func (r *Rotor) Notch() int {
	return r.notch
}

// AtNotch reports whether the rotor is parked on its notch.
func (r *Rotor) AtNotch() bool {
	return r.offset == r.notch
}

// SetOffset moves the rotor to the given position, wrapping modulo the
// alphabet size.
func (r *Rotor) SetOffset(offset int) {
	r.offset = ((offset % alphabet.Size) + alphabet.Size) % alphabet.Size
}

func (r *Rotor) advance() {
	r.offset = (r.offset + 1) % alphabet.Size
}

// effective is the conjugation offset: the visible position shifted by
// the ring setting.
func (r *Rotor) effective() int {
	return (r.offset - r.ring + alphabet.Size) % alphabet.Size
}

// Forward maps x through the wiring at the current offset.
func (r *Rotor) Forward(x int) int {
	o := r.effective()
	return (r.wiring.Apply((x+o)%alphabet.Size) - o + alphabet.Size) % alphabet.Size
}

// Backward maps x through the inverse wiring at the current offset.
func (r *Rotor) Backward(x int) int {
	o := r.effective()
	return (r.wiring.Invert((x+o)%alphabet.Size) - o + alphabet.Size) % alphabet.Size
}

// Clone returns a copy sharing the immutable wiring.
func (r *Rotor) Clone() *Rotor {
	c := *r
	return &c
}

// Banked rotor positions, in physical signal order: the right rotor is
// the one next to the plugboard and steps on every letter.
const (
	Left = iota
	Middle
	Right
	BankSize
)

// Bank is the ordered group of three rotors with the stepping rules.
type Bank struct {
	rotors [BankSize]*Rotor
}

// NewBank groups three rotors, given in left, middle, right order.
func NewBank(left, middle, right *Rotor) *Bank {
	return &Bank{rotors: [BankSize]*Rotor{left, middle, right}}
}

// Rotor returns the rotor at position pos (Left, Middle or Right).
func (b *Bank) Rotor(pos int) *Rotor {
	return b.rotors[pos]
}

// Offsets returns the current offsets in left, middle, right order.
func (b *Bank) Offsets() [BankSize]int {
	return [BankSize]int{b.rotors[Left].offset, b.rotors[Middle].offset, b.rotors[Right].offset}
}

// Step advances the bank by one letter.  All notch comparisons use the
// offsets captured before any rotor moves, which is what produces the
// middle rotor's double-step: a rotor parked on its own notch advances
// together with the carry it hands to its left neighbour.
//
// The right rotor always advances.  Every other rotor advances when its
// right neighbour was parked on its notch, or when it is parked on its
// own notch.
func (b *Bank) Step() {
	var atNotch [BankSize]bool
	for i, r := range b.rotors {
		atNotch[i] = r.AtNotch()
	}

	if atNotch[Middle] || atNotch[Left] {
		b.rotors[Left].advance()
	}
	if atNotch[Right] || atNotch[Middle] {
		b.rotors[Middle].advance()
	}
	b.rotors[Right].advance()
}

// Forward passes x through the rotors in signal order, right to left.
func (b *Bank) Forward(x int) int {
	x = b.rotors[Right].Forward(x)
	x = b.rotors[Middle].Forward(x)
	return b.rotors[Left].Forward(x)
}

// Backward passes x back through the rotors, left to right.
func (b *Bank) Backward(x int) int {
	x = b.rotors[Left].Backward(x)
	x = b.rotors[Middle].Backward(x)
	return b.rotors[Right].Backward(x)
}

// Clone returns a deep copy of the bank.
func (b *Bank) Clone() *Bank {
	return NewBank(b.rotors[Left].Clone(), b.rotors[Middle].Clone(), b.rotors[Right].Clone())
}
