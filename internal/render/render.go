// Package render turns game state into styled text. Every function here is
// pure: it returns a Frame of tokens tagged with a Role, and the terminal
// writer decides what each Role looks like.
package render

import (
	"strings"

	"github.com/ShayCichocki/hangman/internal/game"
)

// Role tags a token with its meaning. Colors are assigned at output time.
type Role string

const (
	RolePlain      Role = "plain"
	RoleRevealed   Role = "revealed"
	RoleUnrevealed Role = "unrevealed"
	RoleHighlight  Role = "highlight"
	RoleNeutral    Role = "neutral"
	RoleCorrect    Role = "correct"
	RoleIncorrect  Role = "incorrect"
	RolePicture    Role = "picture"
	RoleLost       Role = "lost"
)

// Roles lists every role, in a stable order.
var Roles = []Role{
	RolePlain,
	RoleRevealed,
	RoleUnrevealed,
	RoleHighlight,
	RoleNeutral,
	RoleCorrect,
	RoleIncorrect,
	RolePicture,
	RoleLost,
}

// Token is a piece of text with a single style.
type Token struct {
	Text string
	Role Role
}

// Line is one output line.
type Line []Token

// PlainText returns the line without styling.
func (l Line) PlainText() string {
	var b strings.Builder
	for _, tok := range l {
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Frame is a block of lines.
type Frame []Line

// PlainText returns the frame without styling, lines joined by newlines.
func (f Frame) PlainText() string {
	lines := make([]string, len(f))
	for i, l := range f {
		lines[i] = l.PlainText()
	}
	return strings.Join(lines, "\n")
}

// Text returns a single-token line.
func Text(role Role, s string) Line {
	return Line{{Text: s, Role: role}}
}

// Picture returns the gallows frame for the error count, every line in role.
// Error counts outside [0, game.MaxErrors] panic.
func Picture(errors int, role Role) Frame {
	pic := strings.TrimPrefix(game.Picture(errors), "\n")
	rows := strings.Split(pic, "\n")
	frame := make(Frame, len(rows))
	for i, row := range rows {
		frame[i] = Text(role, row)
	}
	return frame
}
