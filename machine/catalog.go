package machine

import "sort"

// CatalogRotor is a historical rotor wiring with its turnover notch.
type CatalogRotor struct {
	Wiring string
	Notch  string
}

// Rotors holds the historical three-rotor machine wheel set.
var Rotors = map[string]CatalogRotor{
	"I":   {Wiring: "ekmflgdqvzntowyhxuspaibrcj", Notch: "q"},
	"II":  {Wiring: "ajdksiruxblhwtmcqgznpyfvoe", Notch: "e"},
	"III": {Wiring: "bdfhjlcprtxvznyeiwgakmusqo", Notch: "v"},
	"IV":  {Wiring: "esovpzjayquirhxlnftgkdcmwb", Notch: "j"},
	"V":   {Wiring: "vzbrgityupsdnhlxawmjqofeck", Notch: "z"},
}

// Reflectors holds the historical reflector wirings.
var Reflectors = map[string]string{
	"A": "ejmzalyxvbwfcrquontspikhgd",
	"B": "yruhqsldpxngokmiebfzcwvjat",
	"C": "fvpjiaoyedrzxwgctkuqsbnmhl",
}

// RotorNames returns the catalog rotor names in stable order.
func RotorNames() []string {
	names := make([]string, 0, len(Rotors))
	for name := range Rotors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
