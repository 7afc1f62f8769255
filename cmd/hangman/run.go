package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/hangman/internal/narrate"
	"github.com/ShayCichocki/hangman/internal/play"
	"github.com/ShayCichocki/hangman/internal/tui"
)

var runTUI bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play a full game",
	Long: `Play a full game of hangman.

Asks for your name, the secret answer (hidden as you type) and an optional
clue, then takes one guess per turn until the answer is revealed or the
gallows are complete.

Examples:
  hangman run              # Play in the terminal, line by line
  hangman run --tui        # Play in full-screen mode
  hangman run --nosound    # Play without the voice`,
	Args: cobra.NoArgs,
	RunE: runGame,
}

func init() {
	runCmd.Flags().BoolVar(&runTUI, "tui", false, "Play in full-screen mode")
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg := current.cfg
	narrator, err := newNarrator(cfg)
	if err != nil {
		return err
	}

	if runTUI {
		return runGameTUI(cmd, narrator)
	}

	loop := play.New(newTerminal(cmd, cfg), narrator, current.log.Logger, playOptions())
	phase, err := loop.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("game ended in %s: %w", phase, err)
	}
	return nil
}

// runGameTUI plays the game in full-screen mode.
func runGameTUI(cmd *cobra.Command, narrator narrate.Narrator) error {
	cfg := current.cfg
	program, app, err := tui.NewProgram(cmd.Context(), narrator, tui.Options{
		DefaultName: cfg.Player.DefaultName,
		Sound:       cfg.Sound.Enabled,
		Wrap:        cfg.Display.Wrap,
		Colors:      cfg.Display.Colors,
		Log:         &current.log.Logger,
	})
	if err != nil {
		return err
	}
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	current.log.Info().Stringer("phase", app.Phase()).Msg("full-screen game finished")
	return nil
}

// playOptions maps config and flags onto the game loop.
func playOptions() play.Options {
	cfg := current.cfg
	return play.Options{
		DefaultName: cfg.Player.DefaultName,
		Sound:       cfg.Sound.Enabled,
		Wrap:        cfg.Display.Wrap,
		Verbosity:   verbose,
	}
}
