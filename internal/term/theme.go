package term

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/ShayCichocki/hangman/internal/render"
)

// colorNames maps config color names to foreground attributes.
var colorNames = map[string]color.Attribute{
	"black":          color.FgBlack,
	"red":            color.FgRed,
	"green":          color.FgGreen,
	"yellow":         color.FgYellow,
	"blue":           color.FgBlue,
	"magenta":        color.FgMagenta,
	"cyan":           color.FgCyan,
	"white":          color.FgWhite,
	"bright_black":   color.FgHiBlack,
	"bright_red":     color.FgHiRed,
	"bright_green":   color.FgHiGreen,
	"bright_yellow":  color.FgHiYellow,
	"bright_blue":    color.FgHiBlue,
	"bright_magenta": color.FgHiMagenta,
	"bright_cyan":    color.FgHiCyan,
	"bright_white":   color.FgHiWhite,
}

// defaultColors is used for roles a configuration leaves out.
var defaultColors = map[render.Role]string{
	render.RolePlain:      "default",
	render.RoleRevealed:   "white",
	render.RoleUnrevealed: "yellow",
	render.RoleHighlight:  "yellow",
	render.RoleNeutral:    "white",
	render.RoleCorrect:    "green",
	render.RoleIncorrect:  "red",
	render.RolePicture:    "yellow",
	render.RoleLost:       "red",
}

// Theme assigns a color to each render role. A nil entry prints unstyled.
type Theme struct {
	names  map[render.Role]string
	colors map[render.Role]*color.Color
}

// NewTheme builds a theme from role→color-name pairs, filling in defaults.
func NewTheme(colors map[string]string) (*Theme, error) {
	t := &Theme{
		names:  make(map[render.Role]string),
		colors: make(map[render.Role]*color.Color),
	}
	for role, name := range defaultColors {
		if err := t.Set(role, name); err != nil {
			return nil, err
		}
	}
	for role, name := range colors {
		if err := t.Set(render.Role(strings.ToLower(role)), name); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// DefaultTheme returns the built-in colors.
func DefaultTheme() *Theme {
	t, _ := NewTheme(nil)
	return t
}

// Set assigns a named color to a role.
func (t *Theme) Set(role render.Role, name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := defaultColors[role]; !ok {
		return fmt.Errorf("unknown role %q", role)
	}

	if name == "" || name == "default" || name == "none" {
		t.names[role] = "default"
		t.colors[role] = nil
		return nil
	}

	attr, ok := colorNames[name]
	if !ok {
		return fmt.Errorf("unknown color %q for %s (known: %s)", name, role, strings.Join(ColorNames(), ", "))
	}
	c := color.New(attr)
	// Whether to style is decided by the Terminal, not by fatih/color's
	// global tty detection.
	c.EnableColor()
	t.names[role] = name
	t.colors[role] = c
	return nil
}

// ColorName returns the color name assigned to role.
func (t *Theme) ColorName(role render.Role) string {
	return t.names[role]
}

// Paint returns text styled for role.
func (t *Theme) Paint(role render.Role, text string) string {
	c := t.colors[role]
	if c == nil || text == "" {
		return text
	}
	return c.Sprint(text)
}

// ColorNames lists the accepted color names.
func ColorNames() []string {
	names := make([]string, 0, len(colorNames)+1)
	names = append(names, "default")
	for name := range colorNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
