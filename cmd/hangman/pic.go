package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/hangman/internal/game"
	"github.com/ShayCichocki/hangman/internal/render"
)

var picColor string

var picCmd = &cobra.Command{
	Use:   "pic <num_errors>",
	Short: "Show the gallows for a number of wrong guesses",
	Long: `Print the hangman picture for num_errors wrong guesses (0 to 6).

Examples:
  hangman pic 3
  hangman pic 6 --color red`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseNumErrors(args[0])
		if err != nil {
			return err
		}
		t := newTerminal(cmd, current.cfg)
		if err := t.Theme().Set(render.RolePicture, picColor); err != nil {
			return err
		}
		t.Show(render.Picture(n, render.RolePicture))
		return nil
	},
}

func init() {
	picCmd.Flags().StringVar(&picColor, "color", "yellow", "Color of the picture")
}

// parseNumErrors reads a picture index and checks it against the gallows.
func parseNumErrors(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("num_errors must be a number, got %q", arg)
	}
	if n < 0 || n > game.MaxErrors {
		return 0, fmt.Errorf("num_errors must be between 0 and %d, got %d", game.MaxErrors, n)
	}
	return n, nil
}
