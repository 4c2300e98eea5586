package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rotorworks/enigma/machine"
)

var (
	cfgFile        string
	inputFileName  string
	outputFileName string
	GitCommit      string = "not set"
	GitBranch      string = "not set"
	BuildDate      string = "not set"
	Version        string = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "A rotor cipher machine emulator and cracker",
	Long: `enigma emulates a three-rotor, single-reflector, plugboard cipher
machine, and recovers an unknown machine configuration from intercepted
ciphertext by statistical search.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "machine configuration file (default is $HOME/.enigma.json)")
	rootCmd.PersistentFlags().StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the file to read text from ('-' for stdin).")
	rootCmd.PersistentFlags().StringVarP(&outputFileName, "outputFile", "o", "-", "Name of the file to write transformed text to ('-' for stdout).")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".enigma" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("json")
		viper.SetConfigName(".enigma")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadMachineConfig unmarshals the machine configuration read by viper.
func loadMachineConfig() machine.Config {
	var cfg machine.Config
	cobra.CheckErr(viper.Unmarshal(&cfg))
	return cfg
}

// getInputAndOutputFiles returns the input and output files to use while
// transforming text.  If input and/or output file names were given, those
// files are opened; otherwise stdin and stdout are used.
func getInputAndOutputFiles() (*os.File, *os.File) {
	var fin *os.File
	var err error

	if len(inputFileName) > 0 && inputFileName != "-" {
		fin, err = os.Open(inputFileName)
		cobra.CheckErr(err)
	} else {
		fin = os.Stdin
	}

	var fout *os.File

	if len(outputFileName) > 0 && outputFileName != "-" {
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else {
		fout = os.Stdout
	}

	return fin, fout
}

// readAllText slurps the input file as a string.
func readAllText(fin *os.File) string {
	data, err := io.ReadAll(fin)
	cobra.CheckErr(err)
	if fin != os.Stdin {
		cobra.CheckErr(fin.Close())
	}
	return string(data)
}

// writeText writes the transformed text, appending a final newline when
// the text lacks one.
func writeText(fout *os.File, text string) {
	_, err := io.WriteString(fout, text)
	cobra.CheckErr(err)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(fout)
	}
	if fout != os.Stdout {
		cobra.CheckErr(fout.Close())
	}
}
