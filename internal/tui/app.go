// Package tui provides the full-screen terminal interface for hangman.
//
// It plays the same game as the line-mode loop in package play, with the
// board redrawn in place and narration running in the background:
//
//	program, app, err := tui.NewProgram(ctx, narrator, tui.Options{})
//	if err != nil {
//	    return err
//	}
//	if _, err := program.Run(); err != nil {
//	    return err
//	}
//	phase := app.Phase()
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ShayCichocki/hangman/internal/game"
	"github.com/ShayCichocki/hangman/internal/narrate"
	"github.com/ShayCichocki/hangman/internal/play"
	"github.com/ShayCichocki/hangman/internal/render"
)

// stage is the prompt the app is waiting on.
type stage int

const (
	stageName stage = iota
	stageAnswer
	stageClue
	stagePlaying
	stageOver
)

// Options configures the app.
type Options struct {
	DefaultName string
	Sound       bool
	Wrap        bool
	// Colors maps render roles to color names.
	Colors map[string]string
	// Log receives narration failures. Nil discards them.
	Log *zerolog.Logger
}

// lineLimit caps the name and clue inputs. The answer has no cap so a long
// phrase is never cut off silently.
const lineLimit = 100

// SpokenMsg is sent when a narration command finishes.
type SpokenMsg struct {
	Err error
}

// App is the bubbletea model for a game.
type App struct {
	ctx      context.Context
	narrator narrate.Narrator
	opts     Options
	styles   Styles
	log      zerolog.Logger

	input    textinput.Model
	stage    stage
	phase    play.Phase
	name     string
	answer   string
	state    *game.State
	notices  []play.Notice
	problem  string
	width    int
	quitting bool
}

// New creates the app model.
func New(ctx context.Context, narrator narrate.Narrator, opts Options) (*App, error) {
	styles, err := NewStyles(opts.Colors)
	if err != nil {
		return nil, err
	}
	if opts.DefaultName == "" {
		opts.DefaultName = game.DefaultPlayerName
	}

	ti := textinput.New()
	ti.Placeholder = opts.DefaultName
	ti.CharLimit = lineLimit
	ti.Width = 40
	ti.Focus()

	log := zerolog.Nop()
	if opts.Log != nil {
		log = *opts.Log
	}

	return &App{
		ctx:      ctx,
		narrator: narrator,
		opts:     opts,
		styles:   styles,
		log:      log,
		input:    ti,
		stage:    stageName,
		phase:    play.PhaseSetup,
		width:    80,
	}, nil
}

// NewProgram creates a bubbletea program running a new App on the
// alternate screen.
func NewProgram(ctx context.Context, narrator narrate.Narrator, opts Options) (*tea.Program, *App, error) {
	app, err := New(ctx, narrator, opts)
	if err != nil {
		return nil, nil, err
	}
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	return program, app, nil
}

// Phase returns the game phase.
func (a *App) Phase() play.Phase {
	return a.phase
}

// State returns the game state, nil during setup.
func (a *App) State() *game.State {
	return a.state
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case SpokenMsg:
		if msg.Err != nil {
			a.log.Debug().Err(msg.Err).Msg("narration failed")
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			a.quitting = true
			return a, tea.Quit
		}
		if a.stage == stageOver {
			a.quitting = true
			return a, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			value := a.input.Value()
			a.input.Reset()
			return a, a.submit(value)
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit handles a line entered at the current stage.
func (a *App) submit(value string) tea.Cmd {
	a.problem = ""

	switch a.stage {
	case stageName:
		name := strings.TrimSpace(value)
		if name == "" {
			name = a.opts.DefaultName
		}
		a.name = render.TitleCase(name)
		a.stage = stageAnswer
		a.input.Placeholder = ""
		a.input.EchoMode = textinput.EchoPassword
		a.input.CharLimit = 0
		return a.say([]string{"Greetings,", a.name})

	case stageAnswer:
		if err := game.ValidateAnswer(value); err != nil {
			a.problem = play.AnswerProblem(err)
			return nil
		}
		a.answer = value
		a.stage = stageClue
		a.input.EchoMode = textinput.EchoNormal
		a.input.CharLimit = lineLimit
		return nil

	case stageClue:
		a.state = game.NewState(a.name, a.answer, value, a.opts.Sound)
		a.stage = stagePlaying
		a.phase = play.PhasePlaying
		a.input.CharLimit = 1
		if a.state.IsWon() {
			return a.say(a.finish()...)
		}
		return nil

	case stagePlaying:
		letter, err := game.ParseGuess(value)
		if err != nil {
			a.problem = "Has to be just one character!"
			return nil
		}
		result := a.state.Register(letter)
		reaction := play.React(a.state, letter, result)
		a.notices = reaction.Notices
		speech := reaction.Speech
		if a.state.Over() {
			speech = append(speech, a.finish()...)
		}
		return a.say(speech...)
	}
	return nil
}

// finish moves to the won or lost ending and returns what to narrate.
func (a *App) finish() [][]string {
	a.stage = stageOver
	a.input.Blur()
	if a.state.IsWon() {
		a.phase = play.PhaseWon
		a.notices = []play.Notice{{Role: render.RoleHighlight, Text: "!!!!! YOU WON !!!!!"}}
		return [][]string{strings.Fields(a.state.Answer())}
	}
	a.phase = play.PhaseLost
	a.notices = []play.Notice{{Role: render.RoleIncorrect, Text: "HA!"}}
	return [][]string{{"Ha,", "you", "lose"}}
}

// say narrates phrases in order without blocking the UI.
func (a *App) say(phrases ...[]string) tea.Cmd {
	if len(phrases) == 0 {
		return nil
	}
	ctx, narrator := a.ctx, a.narrator
	return func() tea.Msg {
		var errs []error
		for _, words := range phrases {
			if err := narrator.Say(ctx, words...); err != nil {
				errs = append(errs, err)
			}
		}
		return SpokenMsg{Err: errors.Join(errs...)}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, a.styles.title.Render("H A N G M A N"), "")

	switch a.stage {
	case stageName, stageAnswer, stageClue:
		sections = append(sections, a.setupView())
	case stagePlaying:
		sections = append(sections, a.boardView(), "", a.promptView("Pick any letter"))
	case stageOver:
		sections = append(sections, a.endView(), "", a.styles.footer.Render("Press any key to exit"))
	}

	if a.problem != "" {
		sections = append(sections, a.styles.Text(render.RoleIncorrect, a.problem))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) setupView() string {
	switch a.stage {
	case stageName:
		return a.promptView("Enter your name")
	case stageAnswer:
		return lipgloss.JoinVertical(lipgloss.Left,
			a.styles.Text(render.RoleHighlight, "Enter the answer (input is hidden so others won't see!)"),
			a.promptView("Answer"),
		)
	default:
		return a.promptView("Clue?")
	}
}

func (a *App) boardView() string {
	s := a.state
	parts := []string{
		a.styles.Frame(render.Picture(s.Errors(), render.RolePicture)),
		"",
		a.styles.Frame(render.Blanks(s.Answer(), s.Chosen(), s.Clue, a.wrapWidth())),
	}
	for _, n := range a.notices {
		parts = append(parts, a.styles.Text(n.Role, n.Text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) endView() string {
	s := a.state
	if a.phase == play.PhaseWon {
		return a.boardView()
	}

	width := a.wrapWidth()
	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Frame(render.Picture(s.Errors(), render.RoleLost)),
		"",
		"Correct:",
		a.styles.Frame(render.Blanks(s.Answer(), s.Answer(), "", width)),
		"",
		"Your plays:",
		a.styles.Frame(render.Blanks(s.Answer(), s.Chosen(), "", width)),
		"",
		a.styles.Text(render.RoleIncorrect, "HA!"),
	)
}

func (a *App) promptView(label string) string {
	prompt := a.styles.Text(render.RoleHighlight, label+": ")
	return a.styles.box.Render(prompt + a.input.View())
}

func (a *App) wrapWidth() int {
	if !a.opts.Wrap {
		return 0
	}
	return a.width
}
