// Package main - enigma is an emulator for a three-rotor plugboard
// cipher machine, together with a ciphertext-only attack that recovers
// an unknown machine configuration by statistical search.
package main

import "github.com/rotorworks/enigma/cmd"

func main() {
	cmd.Execute()
}
