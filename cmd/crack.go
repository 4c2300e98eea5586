package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rotorworks/enigma/crack"
	"github.com/rotorworks/enigma/machine"
)

var (
	crackRotors     []string
	crackReflectors []string
	crackTopK       int
	crackWorkers    int
	crackMaxEvals   int64
	crackTimeout    time.Duration
	crackAnneal     bool
	crackSeed       int64
)

// crackCmd represents the crack command
var crackCmd = &cobra.Command{
	Use:   "crack",
	Short: "Recover a machine configuration from ciphertext",
	Long: `Recover an unknown machine configuration from intercepted ciphertext.

The coarse stage enumerates rotor order, reflector choice and rotor
offsets with an empty plugboard and keeps the best scoring candidates;
the refinement stage then hill-climbs the plugboard of each retained
candidate.  Results below roughly ` + fmt.Sprint(crack.MinViableLetters) + ` ciphertext letters are
best-effort only.  The recovered configuration is printed as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCrack()
	},
}

func init() {
	rootCmd.AddCommand(crackCmd)
	crackCmd.Flags().StringSliceVarP(&crackRotors, "rotors", "r", machine.RotorNames(), "catalog rotors available to the search")
	crackCmd.Flags().StringSliceVarP(&crackReflectors, "reflectors", "R", []string{"B"}, "catalog reflectors to consider")
	crackCmd.Flags().IntVarP(&crackTopK, "top", "k", 10, "number of coarse candidates kept for refinement")
	crackCmd.Flags().IntVarP(&crackWorkers, "workers", "w", 0, "worker count (0 = number of CPUs)")
	crackCmd.Flags().Int64VarP(&crackMaxEvals, "maxEvals", "n", 0, "maximum candidate evaluations (0 = unlimited)")
	crackCmd.Flags().DurationVarP(&crackTimeout, "timeout", "t", 0, "overall time budget (0 = none)")
	crackCmd.Flags().BoolVarP(&crackAnneal, "anneal", "a", false, "use simulated annealing during plugboard refinement")
	crackCmd.Flags().Int64VarP(&crackSeed, "seed", "s", 1, "random seed for annealing")
}

func runCrack() {
	space, err := crack.CatalogSpace(crackRotors, crackReflectors)
	cobra.CheckErr(err)

	searcher, err := crack.NewSearcher(space, crack.Bigram{}, crack.Options{
		TopK:           crackTopK,
		Workers:        crackWorkers,
		MaxEvaluations: crackMaxEvals,
		Annealing:      crackAnneal,
		Seed:           crackSeed,
	})
	cobra.CheckErr(err)

	fin, fout := getInputAndOutputFiles()
	ciphertext := readAllText(fin)

	ctx := context.Background()
	if crackTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, crackTimeout)
		defer cancel()
	}

	started := time.Now()
	result, err := searcher.Crack(ctx, ciphertext)
	cobra.CheckErr(err)

	// Human summary goes to stderr, and only when someone is watching;
	// the JSON configuration on stdout stays pipeable either way.
	if term.IsTerminal(int(os.Stderr.Fd())) {
		m, err := machine.New(result.Best.Config)
		cobra.CheckErr(err)
		preview := m.EncodeText(ciphertext)
		if len(preview) > 80 {
			preview = preview[:80] + "..."
		}
		fmt.Fprintf(os.Stderr, "best score %.2f after %d evaluations in %v\n",
			result.Best.Score, result.Evaluations, time.Since(started).Round(time.Millisecond))
		fmt.Fprintf(os.Stderr, "decrypts as: %s\n", preview)
	}

	out, err := json.MarshalIndent(result.Best.Config, "", "  ")
	cobra.CheckErr(err)
	writeText(fout, string(out))
}
