package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathify/internal/quiz"
)

var (
	flagSampleDifficulty string
	flagSampleCount      int
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print generated questions with answers",
	Long: `Generate questions the way a quiz run would and print them with
their answers. With --seed the list matches the first run of
'mathify play' with the same seed and difficulty.

Examples:
  mathify sample
  mathify sample --difficulty hard -n 20
  mathify sample --difficulty medium --seed 42`,
	Args: cobra.NoArgs,
	Run:  runSample,
}

func init() {
	sampleCmd.Flags().StringVar(&flagSampleDifficulty, "difficulty", "easy", "Difficulty: easy, medium, hard")
	sampleCmd.Flags().IntVarP(&flagSampleCount, "count", "n", 0, "Number of questions (0 = questions per session)")
}

func runSample(_ *cobra.Command, _ []string) {
	d, err := quiz.ParseDifficulty(flagSampleDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, _, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	count := flagSampleCount
	if count <= 0 {
		count = cfg.Session.TotalQuestions
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	p := d.Profile()
	fmt.Printf("Sample questions - %s (%s, %s)\n", d.Title(), p.RangeLabel(), p.OperatorLabel())
	fmt.Printf("Seed: %d\n", seed)
	fmt.Println()

	fmt.Printf("  %4s  %-16s  %s\n", "#", "Question", "Answer")
	fmt.Printf("  %4s  %-16s  %s\n", "--", "--------", "------")

	for i := range count {
		q := quiz.Generate(d, rng)
		fmt.Printf("  %4d  %-16s  %d\n", i+1, q.Text(), q.Answer)
	}
}
