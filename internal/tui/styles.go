package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ShayCichocki/hangman/internal/render"
)

// ansiColors maps config color names to ANSI color numbers.
var ansiColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright_black":   "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// Styles holds one lipgloss style per render role.
type Styles struct {
	roles  map[render.Role]lipgloss.Style
	title  lipgloss.Style
	footer lipgloss.Style
	box    lipgloss.Style
}

// NewStyles builds styles from role→color-name pairs. Roles left out keep
// the default foreground.
func NewStyles(colors map[string]string) (Styles, error) {
	s := Styles{
		roles: make(map[render.Role]lipgloss.Style),
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Bold(true),
		footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
	for _, role := range render.Roles {
		s.roles[role] = lipgloss.NewStyle()
	}

	for role, name := range colors {
		r := render.Role(strings.ToLower(role))
		if _, ok := s.roles[r]; !ok {
			return Styles{}, fmt.Errorf("unknown role %q", role)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || name == "default" || name == "none" {
			continue
		}
		code, ok := ansiColors[name]
		if !ok {
			return Styles{}, fmt.Errorf("unknown color %q for %s", name, role)
		}
		s.roles[r] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return s, nil
}

// Frame renders a frame with each token in its role's style.
func (s Styles) Frame(f render.Frame) string {
	lines := make([]string, len(f))
	for i, line := range f {
		lines[i] = s.Line(line)
	}
	return strings.Join(lines, "\n")
}

// Line renders one line.
func (s Styles) Line(l render.Line) string {
	var b strings.Builder
	for _, tok := range l {
		b.WriteString(s.roles[tok.Role].Render(tok.Text))
	}
	return b.String()
}

// Text renders text in role.
func (s Styles) Text(role render.Role, text string) string {
	return s.roles[role].Render(text)
}
