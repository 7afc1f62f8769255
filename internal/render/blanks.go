package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	placeholder = "_ "
	wordGap     = "  "
	clueLabel   = "Clue: "
)

// Blanks renders the answer with unchosen characters hidden, the clue when
// there is one, and the alphabet legend.
//
// Words are wrapped to width; each word counts as (len+1)*2 columns. A
// width of zero or less disables wrapping.
func Blanks(answer, chosen, clue string, width int) Frame {
	picked := letterSet(chosen)

	var frame Frame
	var line Line
	used := 0
	for _, word := range strings.Split(strings.Map(spaceOut, answer), " ") {
		cost := (len([]rune(word)) + 1) * 2
		if width > 0 && used > 0 && used+cost > width {
			frame = append(frame, line)
			line = nil
			used = 0
		}
		used += cost

		for _, r := range word {
			if picked[unicode.ToLower(r)] {
				line = append(line, Token{Text: string(unicode.ToUpper(r)) + " ", Role: RoleRevealed})
			} else {
				line = append(line, Token{Text: placeholder, Role: RoleUnrevealed})
			}
		}
		line = append(line, Token{Text: wordGap, Role: RolePlain})
	}
	frame = append(frame, line)

	if clue != "" {
		frame = append(frame,
			Line{},
			Line{
				{Text: clueLabel, Role: RoleHighlight},
				{Text: TitleCase(clue), Role: RoleNeutral},
			},
		)
	}

	frame = append(frame, Line{}, Legend(answer, chosen))
	return frame
}

// Legend renders a..z, each letter styled by whether it was chosen and
// whether it is part of the answer.
func Legend(answer, chosen string) Line {
	picked := letterSet(chosen)
	inAnswer := letterSet(answer)

	line := make(Line, 0, 26)
	for c := 'a'; c <= 'z'; c++ {
		role := RoleNeutral
		if picked[c] {
			if inAnswer[c] {
				role = RoleCorrect
			} else {
				role = RoleIncorrect
			}
		}
		line = append(line, Token{Text: string(c), Role: role})
	}
	return line
}

// TitleCase capitalizes the first letter of each word.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// spaceOut maps any whitespace rune to a plain space.
func spaceOut(r rune) rune {
	if unicode.IsSpace(r) {
		return ' '
	}
	return r
}

// letterSet returns the lowercased runes of s.
func letterSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[unicode.ToLower(r)] = true
	}
	return set
}
