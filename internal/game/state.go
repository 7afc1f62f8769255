package game

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultPlayerName is used when the player leaves the name prompt blank.
const DefaultPlayerName = "No Name"

// State is everything one game needs between turns.
type State struct {
	// ID is a short identifier used to correlate log lines of one game.
	ID           string
	PlayerName   string
	Clue         string
	SoundEnabled bool

	*Tracker
}

// NewState starts a game. The clue is trimmed and the answer's words are
// rejoined with single spaces, so tabs and non-breaking spaces never become
// letters to guess. A blank player name falls back to DefaultPlayerName.
func NewState(playerName, answer, clue string, sound bool) *State {
	name := strings.TrimSpace(playerName)
	if name == "" {
		name = DefaultPlayerName
	}
	return &State{
		ID:           uuid.New().String()[:8],
		PlayerName:   name,
		Clue:         strings.TrimSpace(clue),
		SoundEnabled: sound,
		Tracker:      NewTracker(strings.Join(strings.Fields(answer), " ")),
	}
}

// HasClue reports whether a clue was given.
func (s *State) HasClue() bool {
	return s.Clue != ""
}

// Over reports whether the game reached a terminal state.
func (s *State) Over() bool {
	return s.IsWon() || s.IsLost()
}
