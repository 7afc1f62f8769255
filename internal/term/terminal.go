// Package term is the line-based terminal the game talks to: styled
// output, prompts, hidden input, screen clearing and pausing.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	xterm "github.com/charmbracelet/x/term"

	"github.com/ShayCichocki/hangman/internal/render"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Options configures a Terminal.
type Options struct {
	In  io.Reader
	Out io.Writer
	// Theme defaults to DefaultTheme.
	Theme *Theme
	// Color enables styling. It is ignored when Out is not a terminal.
	Color bool
}

// Terminal reads lines from In and writes styled text to Out.
type Terminal struct {
	in     *bufio.Reader
	inFd   uintptr
	inTTY  bool
	out    io.Writer
	outFd  uintptr
	outTTY bool
	theme  *Theme
	color  bool
}

// New creates a Terminal. Nil In/Out default to stdin/stdout.
func New(opts Options) *Terminal {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	theme := opts.Theme
	if theme == nil {
		theme = DefaultTheme()
	}

	t := &Terminal{
		in:    bufio.NewReader(in),
		out:   out,
		theme: theme,
	}
	if f, ok := in.(*os.File); ok && xterm.IsTerminal(f.Fd()) {
		t.inFd, t.inTTY = f.Fd(), true
	}
	if f, ok := out.(*os.File); ok && xterm.IsTerminal(f.Fd()) {
		t.outFd, t.outTTY = f.Fd(), true
	}
	t.color = opts.Color && t.outTTY
	return t
}

// Theme returns the terminal's theme.
func (t *Terminal) Theme() *Theme {
	return t.theme
}

// Show writes a frame, one line per row.
func (t *Terminal) Show(f render.Frame) {
	for _, line := range f {
		t.writeLine(line)
	}
}

// Echo writes one line of text in role.
func (t *Terminal) Echo(role render.Role, text string) {
	t.writeLine(render.Text(role, text))
}

// Newline writes an empty line.
func (t *Terminal) Newline() {
	fmt.Fprintln(t.out)
}

// Prompt asks for a line of input. An empty answer returns def.
func (t *Terminal) Prompt(label, def string) (string, error) {
	fmt.Fprint(t.out, t.paint(render.RoleHighlight, label)+": ")
	line, err := t.readLine()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) == "" {
		return def, nil
	}
	return line, nil
}

// PromptHidden asks for a line of input without echoing it.
func (t *Terminal) PromptHidden(label string) (string, error) {
	fmt.Fprint(t.out, t.paint(render.RoleHighlight, label)+": ")
	if !t.inTTY {
		return t.readLine()
	}

	secret, err := xterm.ReadPassword(t.inFd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", fmt.Errorf("read hidden input: %w", err)
	}
	return string(secret), nil
}

// Clear blanks the screen. It does nothing when Out is not a terminal.
func (t *Terminal) Clear() {
	if t.outTTY {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
}

// Pause waits for a key press, or for a line when In is not a terminal.
// Running out of input counts as a key press.
func (t *Terminal) Pause() error {
	if !t.inTTY {
		_, err := t.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	state, err := xterm.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer xterm.Restore(t.inFd, state)

	if _, err := t.in.ReadByte(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read key: %w", err)
	}
	return nil
}

// Width returns the terminal width in columns.
func (t *Terminal) Width() int {
	if !t.outTTY {
		return DefaultWidth
	}
	w, _, err := xterm.GetSize(t.outFd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

func (t *Terminal) writeLine(line render.Line) {
	var b strings.Builder
	for _, tok := range line {
		b.WriteString(t.paint(tok.Role, tok.Text))
	}
	b.WriteByte('\n')
	io.WriteString(t.out, b.String())
}

func (t *Terminal) paint(role render.Role, text string) string {
	if !t.color {
		return text
	}
	return t.theme.Paint(role, text)
}

// readLine reads one line without its line ending. A final line without a
// newline is returned before io.EOF.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
