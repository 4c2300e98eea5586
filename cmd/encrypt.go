package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rotorworks/enigma/machine"
)

// encryptCmd represents the encrypt command
var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt text using the configured machine",
	Long: `Encrypt text using the machine described by the configuration file.
Letters keep their case; whitespace and punctuation pass through unchanged.`,
	Run: func(cmd *cobra.Command, args []string) {
		transform()
	},
}

func init() {
	rootCmd.AddCommand(encryptCmd)
}

// transform runs the full letter pipeline over the input text.  The
// machine is self-inverse, so encryption and decryption are the same
// operation under the same starting configuration.
func transform() {
	m, err := machine.New(loadMachineConfig())
	cobra.CheckErr(err)

	fin, fout := getInputAndOutputFiles()
	writeText(fout, m.EncodeText(readAllText(fin)))
}
