// Package play runs a line-mode game of hangman: setup, turns, and the
// won or lost endings.
package play

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ShayCichocki/hangman/internal/game"
	"github.com/ShayCichocki/hangman/internal/narrate"
	"github.com/ShayCichocki/hangman/internal/render"
)

// debugSentinel is the guess input that prints a state snapshot instead
// of counting as a turn.
const debugSentinel = "debug"

// Phase is where a game is in its lifecycle.
type Phase int

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Console is the terminal the loop talks to.
type Console interface {
	Clear()
	Show(render.Frame)
	Echo(role render.Role, text string)
	Newline()
	Prompt(label, def string) (string, error)
	PromptHidden(label string) (string, error)
	Pause() error
	Width() int
}

// Options configures a Loop.
type Options struct {
	// DefaultName is used when the player leaves the name blank.
	DefaultName string
	// Sound is recorded on the game state.
	Sound bool
	// Wrap enables word wrapping of the blanks to the console width.
	Wrap bool
	// Verbosity is the -v count; 2 or more echoes debug snapshots.
	Verbosity int
}

// Loop drives one game.
type Loop struct {
	console  Console
	narrator narrate.Narrator
	log      zerolog.Logger
	opts     Options

	phase Phase
	state *game.State
}

// New creates a Loop.
func New(console Console, narrator narrate.Narrator, log zerolog.Logger, opts Options) *Loop {
	if opts.DefaultName == "" {
		opts.DefaultName = game.DefaultPlayerName
	}
	return &Loop{
		console:  console,
		narrator: narrator,
		log:      log,
		opts:     opts,
	}
}

// Phase returns the current phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// State returns the game state, nil before setup.
func (l *Loop) State() *game.State {
	return l.state
}

// Run plays a full game and returns the terminal phase.
func (l *Loop) Run(ctx context.Context) (Phase, error) {
	s, err := l.Setup(ctx)
	if err != nil {
		return l.phase, err
	}
	return l.Play(ctx, s)
}

// Setup asks for the player name, the hidden answer and an optional clue.
func (l *Loop) Setup(ctx context.Context) (*game.State, error) {
	l.phase = PhaseSetup
	l.console.Clear()

	name, err := l.console.Prompt("Enter your name", l.opts.DefaultName)
	if err != nil {
		return nil, fmt.Errorf("read player name: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = l.opts.DefaultName
	}
	name = render.TitleCase(name)
	l.speak(ctx, []string{"Greetings,", name})

	l.console.Newline()
	l.console.Echo(render.RoleHighlight, "Enter the answer (input is hidden so others won't see!)")
	var answer string
	for {
		answer, err = l.console.PromptHidden("Answer")
		if err != nil {
			return nil, fmt.Errorf("read answer: %w", err)
		}
		if err := game.ValidateAnswer(answer); err != nil {
			l.console.Echo(render.RoleIncorrect, AnswerProblem(err))
			continue
		}
		break
	}

	l.console.Newline()
	clue, err := l.console.Prompt("Clue?", "")
	if err != nil {
		return nil, fmt.Errorf("read clue: %w", err)
	}

	l.state = game.NewState(name, answer, clue, l.opts.Sound)
	l.log.Info().
		Str("game", l.state.ID).
		Str("player", l.state.PlayerName).
		Bool("clue", l.state.HasClue()).
		Msg("game started")
	return l.state, nil
}

// Play runs turns until the game is won or lost.
func (l *Loop) Play(ctx context.Context, s *game.State) (Phase, error) {
	l.state = s
	l.phase = PhasePlaying

	var notices []Notice
	for {
		if err := ctx.Err(); err != nil {
			return l.phase, err
		}

		l.draw(s, notices)
		notices = nil

		if s.IsWon() {
			return l.won(ctx, s)
		}

		letter, err := l.AskLetter(ctx)
		if err != nil {
			return l.phase, err
		}

		result := s.Register(letter)
		l.log.Debug().
			Str("game", s.ID).
			Str("letter", string(letter)).
			Stringer("result", result).
			Int("errors", s.Errors()).
			Msg("guess")

		reaction := React(s, letter, result)
		for _, n := range reaction.Notices {
			l.console.Echo(n.Role, n.Text)
		}
		l.speak(ctx, reaction.Speech...)
		notices = reaction.Notices

		if s.IsLost() {
			return l.lost(ctx, s)
		}
	}
}

// AskLetter prompts until the player types exactly one character.
func (l *Loop) AskLetter(ctx context.Context) (rune, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		input, err := l.console.Prompt("Pick any letter", "")
		if err != nil {
			return 0, fmt.Errorf("read guess: %w", err)
		}

		if strings.EqualFold(strings.TrimSpace(input), debugSentinel) {
			l.snapshot()
			continue
		}

		letter, err := game.ParseGuess(input)
		if err != nil {
			l.console.Echo(render.RoleIncorrect, "Has to be just one character!")
			continue
		}
		return letter, nil
	}
}

func (l *Loop) draw(s *game.State, notices []Notice) {
	l.console.Clear()
	l.console.Show(render.Picture(s.Errors(), render.RolePicture))
	l.console.Newline()
	l.console.Show(render.Blanks(s.Answer(), s.Chosen(), s.Clue, l.width()))
	l.console.Newline()
	for _, n := range notices {
		l.console.Echo(n.Role, n.Text)
	}
}

func (l *Loop) won(ctx context.Context, s *game.State) (Phase, error) {
	l.phase = PhaseWon
	l.log.Info().Str("game", s.ID).Int("errors", s.Errors()).Msg("game won")

	l.console.Echo(render.RoleHighlight, "!!!!! YOU WON !!!!!")
	l.speak(ctx, strings.Fields(s.Answer()))
	if err := l.console.Pause(); err != nil {
		return l.phase, err
	}
	l.console.Clear()
	return l.phase, nil
}

func (l *Loop) lost(ctx context.Context, s *game.State) (Phase, error) {
	l.phase = PhaseLost
	l.log.Info().Str("game", s.ID).Str("chosen", s.Chosen()).Msg("game lost")

	l.console.Echo(render.RoleIncorrect, "HA!")
	l.speak(ctx, []string{"Ha,", "you", "lose"})

	width := l.width()
	l.console.Clear()
	l.console.Show(render.Picture(s.Errors(), render.RoleLost))
	l.console.Newline()
	l.console.Echo(render.RolePlain, "Correct:")
	l.console.Newline()
	l.console.Show(render.Blanks(s.Answer(), s.Answer(), "", width))
	l.console.Newline()
	l.console.Newline()
	l.console.Echo(render.RolePlain, "Your plays:")
	l.console.Show(render.Blanks(s.Answer(), s.Chosen(), "", width))

	if err := l.console.Pause(); err != nil {
		return l.phase, err
	}
	l.console.Clear()
	return l.phase, nil
}

// speak narrates each phrase in turn. Sound is cosmetic, so failures are
// only logged.
func (l *Loop) speak(ctx context.Context, phrases ...[]string) {
	for _, words := range phrases {
		if err := l.narrator.Say(ctx, words...); err != nil {
			l.log.Debug().Err(err).Strs("words", words).Msg("narration failed")
		}
	}
}

// snapshot logs the current state and echoes it at -vv.
func (l *Loop) snapshot() {
	s := l.state
	if s == nil {
		l.log.Debug().Str("phase", l.phase.String()).Msg("state snapshot: no game")
		if l.opts.Verbosity >= 2 {
			l.console.Echo(render.RoleHighlight, "phase="+l.phase.String()+" (no game)")
		}
		return
	}

	l.log.Debug().
		Str("game", s.ID).
		Str("phase", l.phase.String()).
		Str("player", s.PlayerName).
		Str("chosen", s.Chosen()).
		Str("remaining", string(s.Remaining())).
		Int("errors", s.Errors()).
		Msg("state snapshot")
	if l.opts.Verbosity >= 2 {
		l.console.Echo(render.RoleHighlight, fmt.Sprintf(
			"game=%s phase=%s player=%s answer=%q clue=%q chosen=%q errors=%d sound=%t",
			s.ID, l.phase, s.PlayerName, s.Answer(), s.Clue, s.Chosen(), s.Errors(), s.SoundEnabled))
	}
}

func (l *Loop) width() int {
	if !l.opts.Wrap {
		return 0
	}
	return l.console.Width()
}

// AnswerProblem turns an answer validation error into a player message.
func AnswerProblem(err error) string {
	switch {
	case errors.Is(err, game.ErrEmptyAnswer):
		return "The answer can't be empty!"
	case errors.Is(err, game.ErrNoLetters):
		return "The answer needs at least one letter!"
	default:
		return err.Error()
	}
}
