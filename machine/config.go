package machine

import (
	"fmt"
	"strings"

	"github.com/rotorworks/enigma/machine/alphabet"
	"github.com/rotorworks/enigma/machine/permutation"
)

// RotorConfig describes one rotor: a 26-letter wiring string (position i
// holds the image of letter i), the notch letter, the initial offset
// letter, and an optional ring setting letter (defaults to 'a').
type RotorConfig struct {
	Wiring string `json:"wiring" mapstructure:"wiring"`
	Notch  string `json:"notch" mapstructure:"notch"`
	Offset string `json:"offset" mapstructure:"offset"`
	Ring   string `json:"ring,omitempty" mapstructure:"ring"`
}

// ReflectorConfig describes the reflector: a 26-letter wiring string and
// an integer offset folded into the wiring at construction.
type ReflectorConfig struct {
	Wiring string `json:"wiring" mapstructure:"wiring"`
	Offset int    `json:"offset" mapstructure:"offset"`
}

// Config is the externally supplied machine description.  Rotors are
// listed in left, middle, right order; the right rotor meets the
// plugboard side.  Plugboard entries are two-letter pair strings such
// as "ab".
type Config struct {
	Plugboard []string       `json:"plugboard" mapstructure:"plugboard"`
	Rotors    []RotorConfig  `json:"rotors" mapstructure:"rotors"`
	Reflector ReflectorConfig `json:"reflector" mapstructure:"reflector"`
}

// Clone returns a deep copy of the configuration.
func (c Config) Clone() Config {
	out := c
	out.Plugboard = append([]string(nil), c.Plugboard...)
	out.Rotors = append([]RotorConfig(nil), c.Rotors...)
	return out
}

// ParseWiring converts a 26-letter wiring string into a permutation.
func ParseWiring(s string) (permutation.Permutation, error) {
	if len(s) != alphabet.Size {
		return permutation.Permutation{}, fmt.Errorf("%w: wiring %q has length %d, want %d",
			permutation.ErrInvalidPermutation, s, len(s), alphabet.Size)
	}
	seq := make([]int, 0, alphabet.Size)
	for _, r := range s {
		i, ok := alphabet.Index(r)
		if !ok {
			return permutation.Permutation{}, fmt.Errorf("%w: wiring %q contains non-letter %q",
				permutation.ErrInvalidPermutation, s, r)
		}
		seq = append(seq, i)
	}
	return permutation.FromSequence(seq)
}

// ParseSymbol converts a one-letter string into an alphabet index.
func ParseSymbol(s string) (int, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("expected a single letter, got %q", s)
	}
	i, ok := alphabet.Index(runes[0])
	if !ok {
		return 0, fmt.Errorf("%q is not a letter", s)
	}
	return i, nil
}

// ParsePairs converts plugboard pair strings into index pairs.  Each
// entry must be exactly two distinct letters; disjointness across pairs
// is enforced by the plugboard constructor.
func ParsePairs(pairs []string) ([][2]int, error) {
	out := make([][2]int, 0, len(pairs))
	for _, p := range pairs {
		runes := []rune(strings.TrimSpace(p))
		if len(runes) != 2 {
			return nil, fmt.Errorf("plugboard pair %q must be exactly two letters", p)
		}
		a, ok := alphabet.Index(runes[0])
		if !ok {
			return nil, fmt.Errorf("plugboard pair %q contains non-letter %q", p, runes[0])
		}
		b, ok := alphabet.Index(runes[1])
		if !ok {
			return nil, fmt.Errorf("plugboard pair %q contains non-letter %q", p, runes[1])
		}
		out = append(out, [2]int{a, b})
	}
	return out, nil
}
