package main

import (
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/hangman/internal/render"
)

var blanksClue string

var blanksCmd = &cobra.Command{
	Use:   "blanks <answer> <chosen>",
	Short: "Show the board for an answer and the letters chosen so far",
	Long: `Print the revealed answer, the optional clue and the letter legend.

Examples:
  hangman blanks "hello world" lo
  hangman blanks "hello world" lo --clue "a greeting"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := newTerminal(cmd, current.cfg)
		width := 0
		if current.cfg.Display.Wrap {
			width = t.Width()
		}
		t.Show(render.Blanks(args[0], args[1], blanksClue, width))
		return nil
	},
}

func init() {
	blanksCmd.Flags().StringVar(&blanksClue, "clue", "", "Clue to show under the answer")
}
