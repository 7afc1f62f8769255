package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/hangman/internal/play"
)

var askUserCmd = &cobra.Command{
	Use:   "ask_user",
	Short: "Ask for a single letter and print it",
	Long: `Prompt until a single character is entered, then print it.

Useful for checking how guesses are read without playing a whole game.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		narrator, err := newNarrator(current.cfg)
		if err != nil {
			return err
		}
		loop := play.New(newTerminal(cmd, current.cfg), narrator, current.log.Logger, playOptions())
		letter, err := loop.AskLetter(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(letter))
		return nil
	},
}
