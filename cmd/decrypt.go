package cmd

import (
	"github.com/spf13/cobra"
)

// decryptCmd represents the decrypt command
var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt text using the configured machine",
	Long: `Decrypt text using the machine described by the configuration file.
Decryption is the same transformation as encryption applied from the same
starting configuration; the command exists so intent reads clearly in
scripts.`,
	Run: func(cmd *cobra.Command, args []string) {
		transform()
	},
}

func init() {
	rootCmd.AddCommand(decryptCmd)
}
