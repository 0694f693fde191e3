package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
	"github.com/vovakirdan/tui-wordle/internal/vocab"
)

var judgeCmd = &cobra.Command{
	Use:   "judge <guess> <answer>",
	Short: "Show the feedback for one guess",
	Long: `Evaluate a guess against an answer and print the colored row with its
symbols underneath:

  =  correct letter in the correct position
  ?  letter is in the answer at another position
  .  letter is not in the answer (or all its copies are already matched)

Neither word has to be in a word list.

Examples:
  wordle judge crane slate
  wordle judge speed erase`,
	Args: cobra.ExactArgs(2),
	RunE: runJudge,
}

func runJudge(cmd *cobra.Command, args []string) error {
	guess, ok := vocab.Normalize(args[0])
	if !ok {
		return fmt.Errorf("guess %q: %w", args[0], core.ErrWordLength)
	}
	answer, ok := vocab.Normalize(args[1])
	if !ok {
		return fmt.Errorf("answer %q: %w", args[1], core.ErrWordLength)
	}

	res, err := core.EvaluateStrict(guess, answer)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tui.RenderResult(guess, res, tui.DefaultTheme()))
	if res.Solved() {
		fmt.Fprintln(out, "Solved!")
	}
	return nil
}
