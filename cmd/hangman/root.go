package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/hangman/internal/config"
	"github.com/ShayCichocki/hangman/internal/diag"
	"github.com/ShayCichocki/hangman/internal/exec"
	"github.com/ShayCichocki/hangman/internal/narrate"
	"github.com/ShayCichocki/hangman/internal/render"
	"github.com/ShayCichocki/hangman/internal/term"
)

var (
	verbose    int
	noSound    bool
	noColor    bool
	configPath string
)

// session is what every command gets after the root pre-run.
type session struct {
	cfg *config.Config
	log *diag.Logger
}

var current *session

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Speaking hangman, the command-line way",
	Long: `A game of hangman for the terminal that talks back.

One player types a secret answer (hidden) and an optional clue, then
guesses one letter at a time. Six wrong guesses and you hang.

With no arguments, plays a full game (same as 'hangman run').

Sound uses the system voice command ('say' on macOS, 'espeak' elsewhere).
Turn it off with --nosound or sound.enabled: false.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSession,
	RunE:              runGame,
}

// Execute runs the root command
func Execute() {
	if err := executeContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// executeContext runs the root command and closes the session whether or
// not the command succeeded.
func executeContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if cerr := closeSession(); err == nil {
		err = cerr
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "Help to debug your program, add more for more output")
	rootCmd.PersistentFlags().BoolVar(&noSound, "nosound", false, "Turn the sound off")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/hangman/config.yaml)")
	rootCmd.Flags().BoolVar(&runTUI, "tui", false, "Play in full-screen mode")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(picCmd)
	rootCmd.AddCommand(blanksCmd)
	rootCmd.AddCommand(sayCmd)
	rootCmd.AddCommand(askUserCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSession loads config and opens the diagnostic logger.
func loadSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noSound {
		cfg.Sound.Enabled = false
	}
	if noColor {
		cfg.Display.Color = false
	}

	log, err := diag.New(diag.Options{
		Verbosity: verbose,
		File:      cfg.Log.File,
		Level:     cfg.Log.Level,
		Stderr:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("open diagnostic log: %w", err)
	}

	current = &session{cfg: cfg, log: log}
	if verbose > 0 {
		dumpSettings(cmd, cfg)
	}
	return nil
}

// loadConfig reads --config when given, otherwise the user and project files.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	return config.Load()
}

func closeSession() error {
	if current == nil {
		return nil
	}
	err := current.log.Close()
	current = nil
	return err
}

// dumpSettings echoes the effective settings: a VERBOSE banner at -v and
// every key at -vv.
func dumpSettings(cmd *cobra.Command, cfg *config.Config) {
	t := newTerminal(cmd, cfg)
	t.Echo(render.RoleIncorrect, "VERBOSE")
	if verbose < 2 {
		return
	}
	t.Echo(render.RoleHighlight, "Settings:")
	for _, key := range config.Keys(cfg) {
		value, err := config.Value(cfg, key)
		if err != nil {
			continue
		}
		t.Echo(render.RolePlain, fmt.Sprintf("\t%s=%s", key, value))
	}
}

// newTerminal builds the line-mode terminal for cmd's streams.
func newTerminal(cmd *cobra.Command, cfg *config.Config) *term.Terminal {
	theme, err := term.NewTheme(cfg.Display.Colors)
	if err != nil {
		current.log.Warn().Err(err).Msg("invalid display colors, using defaults")
		theme = term.DefaultTheme()
	}
	return term.New(term.Options{
		In:    cmd.InOrStdin(),
		Out:   cmd.OutOrStdout(),
		Theme: theme,
		Color: cfg.Display.Color,
	})
}

// newNarrator builds the narrator from config: the voice command with its
// denylist, or a silent pause.
func newNarrator(cfg *config.Config) (narrate.Narrator, error) {
	policy, err := narrate.LoadDenylist(cfg.Sound.DenylistFile, cfg.Sound.Denylist...)
	if err != nil {
		return nil, err
	}
	return narrate.New(narrate.Options{
		Enabled: cfg.Sound.Enabled,
		Command: cfg.Sound.Command,
		Args:    cfg.Sound.Args,
		Delay:   cfg.Sound.Delay,
		Policy:  policy,
	}, exec.NewRunner(), current.log.Logger), nil
}
