package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/hangman/internal/narrate"
	"github.com/ShayCichocki/hangman/internal/render"
)

var sayCmd = &cobra.Command{
	Use:   "say <words...>",
	Short: "Speak some words with the configured voice",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		narrator, err := newNarrator(current.cfg)
		if err != nil {
			return err
		}
		current.log.Debug().Strs("words", args).Msg("saying")
		err = narrator.Say(cmd.Context(), args...)
		if errors.Is(err, narrate.ErrRefused) {
			newTerminal(cmd, current.cfg).Echo(render.RoleIncorrect, "I am not going to say that!")
			return nil
		}
		return err
	},
}
