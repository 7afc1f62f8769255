package play

import (
	"fmt"

	"github.com/ShayCichocki/hangman/internal/game"
	"github.com/ShayCichocki/hangman/internal/render"
)

// Notice is a line of feedback shown to the player.
type Notice struct {
	Role render.Role
	Text string
}

// Reaction is what the game shows and says after a guess.
type Reaction struct {
	Notices []Notice
	// Speech holds phrases to narrate, in order.
	Speech [][]string
}

// React maps a registered guess to player feedback. It must be called
// after the guess was registered on s.
func React(s *game.State, letter rune, result game.GuessResult) Reaction {
	switch result {
	case game.AlreadyChosen:
		return Reaction{
			Notices: []Notice{{render.RoleHighlight, fmt.Sprintf("You already picked %q.", letter)}},
			Speech:  [][]string{{"What", "are", "you", "doing,", s.PlayerName + "?"}},
		}
	case game.Correct:
		return Reaction{
			Notices: []Notice{{render.RoleCorrect, "Yes!"}},
			Speech:  [][]string{{string(letter)}, {"Yes!"}},
		}
	default:
		r := Reaction{
			Notices: []Notice{{render.RoleIncorrect, "No"}},
			Speech:  [][]string{{string(letter)}, {"No!"}},
		}
		if s.Errors() == game.MaxErrors-1 {
			r.Notices = append(r.Notices, Notice{render.RoleHighlight, "Careful..."})
			r.Speech = append(r.Speech, []string{"Careful..."})
		}
		return r
	}
}
