// Package machine composes the plugboard, rotor bank and reflector into
// the full letter pipeline.
//
// The signal path for one letter is: step the rotor bank, then plugboard,
// rotors right to left, reflector, rotors left to right, plugboard again.
// Because the reflector is an involution and every other stage is applied
// symmetrically around it, a machine is self-inverse: encrypting and then
// decrypting under the same starting configuration returns the original
// text.
package machine

import (
	"fmt"

	"github.com/rotorworks/enigma/machine/alphabet"
	"github.com/rotorworks/enigma/machine/plugboard"
	"github.com/rotorworks/enigma/machine/reflector"
	"github.com/rotorworks/enigma/machine/rotor"
)

// Machine owns its plugboard, rotor bank and reflector exclusively.
// Only the rotor offsets mutate as letters are processed.
type Machine struct {
	plugboard plugboard.Plugboard
	bank      *rotor.Bank
	reflector reflector.Reflector
	start     [rotor.BankSize]int
}

// New assembles a machine from a configuration.  Any malformed component
// fails with an error wrapping ErrInvalidConfiguration before a single
// letter can be processed; no partial machine is ever returned.
func New(cfg Config) (*Machine, error) {
	if len(cfg.Rotors) != rotor.BankSize {
		return nil, fmt.Errorf("%w: got %d rotors, want exactly %d",
			ErrInvalidConfiguration, len(cfg.Rotors), rotor.BankSize)
	}

	pairs, err := ParsePairs(cfg.Plugboard)
	if err != nil {
		return nil, fmt.Errorf("%w: plugboard: %v", ErrInvalidConfiguration, err)
	}
	board, err := plugboard.New(pairs)
	if err != nil {
		return nil, fmt.Errorf("%w: plugboard: %v", ErrInvalidConfiguration, err)
	}

	rotors := make([]*rotor.Rotor, 0, rotor.BankSize)
	for i, rc := range cfg.Rotors {
		r, err := buildRotor(rc)
		if err != nil {
			return nil, fmt.Errorf("%w: rotor %d: %v", ErrInvalidConfiguration, i, err)
		}
		rotors = append(rotors, r)
	}

	wiring, err := ParseWiring(cfg.Reflector.Wiring)
	if err != nil {
		return nil, fmt.Errorf("%w: reflector: %v", ErrInvalidConfiguration, err)
	}
	if cfg.Reflector.Offset < 0 || cfg.Reflector.Offset >= alphabet.Size {
		return nil, fmt.Errorf("%w: reflector: offset %d out of range",
			ErrInvalidConfiguration, cfg.Reflector.Offset)
	}
	refl, err := reflector.New(wiring, cfg.Reflector.Offset)
	if err != nil {
		return nil, fmt.Errorf("%w: reflector: %v", ErrInvalidConfiguration, err)
	}

	bank := rotor.NewBank(rotors[rotor.Left], rotors[rotor.Middle], rotors[rotor.Right])
	return &Machine{
		plugboard: board,
		bank:      bank,
		reflector: refl,
		start:     bank.Offsets(),
	}, nil
}

func buildRotor(rc RotorConfig) (*rotor.Rotor, error) {
	wiring, err := ParseWiring(rc.Wiring)
	if err != nil {
		return nil, err
	}
	notch, err := ParseSymbol(rc.Notch)
	if err != nil {
		return nil, fmt.Errorf("notch: %v", err)
	}
	offset, err := ParseSymbol(rc.Offset)
	if err != nil {
		return nil, fmt.Errorf("offset: %v", err)
	}
	ring := 0
	if rc.Ring != "" {
		ring, err = ParseSymbol(rc.Ring)
		if err != nil {
			return nil, fmt.Errorf("ring: %v", err)
		}
	}
	return rotor.New(wiring, notch, offset, ring)
}

// EncodeIndex transforms one alphabet index.  The bank steps before the
// signal enters the path, so the first letter is already encoded at the
// position after the initial offsets.
func (m *Machine) EncodeIndex(x int) int {
	m.bank.Step()
	x = m.plugboard.Apply(x)
	x = m.bank.Forward(x)
	x = m.reflector.Apply(x)
	x = m.bank.Backward(x)
	return m.plugboard.Apply(x)
}

// EncodeText transforms text letter by letter.  ASCII letters keep their
// case; everything else passes through unchanged and does not step the
// rotors.
func (m *Machine) EncodeText(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		i, ok := alphabet.Index(r)
		if !ok {
			out = append(out, r)
			continue
		}
		y := m.EncodeIndex(i)
		if r >= 'A' && r <= 'Z' {
			out = append(out, alphabet.Upper(y))
		} else {
			out = append(out, alphabet.Lower(y))
		}
	}
	return string(out)
}

// Offsets returns the current rotor offsets in left, middle, right
// order.
func (m *Machine) Offsets() [rotor.BankSize]int {
	return m.bank.Offsets()
}

// Reset returns the rotors to their starting offsets, making the machine
// equivalent to a freshly constructed one.
func (m *Machine) Reset() {
	for i, o := range m.start {
		m.bank.Rotor(i).SetOffset(o)
	}
}
