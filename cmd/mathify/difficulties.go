package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathify/internal/quiz"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty levels",
	Long:  `Shows each difficulty level with its number range and operators.`,
	Args:  cobra.NoArgs,
	Run:   runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	fmt.Println("Difficulty levels:")
	fmt.Println()

	fmt.Printf("  %-8s  %-8s  %s\n", "ID", "Range", "Operators")
	fmt.Printf("  %-8s  %-8s  %s\n", "--", "-----", "---------")

	for _, d := range quiz.Difficulties {
		p := d.Profile()
		fmt.Printf("  %-8s  %-8s  %s\n", d, p.RangeLabel(), p.OperatorLabel())
	}

	fmt.Println()
	fmt.Printf("Each run has %d questions with %s per question.\n", quiz.DefaultTotalQuestions, quiz.DefaultTimeLimit)
	fmt.Println("Run 'mathify play --difficulty <id>' to skip the welcome screen.")
}
