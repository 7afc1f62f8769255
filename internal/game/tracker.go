// Package game holds the hangman rules: the guess tracker, answer
// validation, the per-game state and the gallows pictures.
package game

import (
	"strings"
	"unicode"
)

// MaxErrors is the number of wrong guesses that ends a game.
// It matches the last index of Pictures.
const MaxErrors = 6

// GuessResult is the outcome of registering a guess.
type GuessResult int

const (
	// AlreadyChosen means the letter was guessed before; nothing changed.
	AlreadyChosen GuessResult = iota
	// Correct means the letter is part of the answer.
	Correct
	// Incorrect means the letter is not part of the answer.
	Incorrect
)

// String returns the result name.
func (r GuessResult) String() string {
	switch r {
	case AlreadyChosen:
		return "already_chosen"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Tracker keeps the answer, the letters chosen so far and the error count.
type Tracker struct {
	answer  string
	letters map[rune]bool // distinct non-whitespace runes of the lowercased answer
	chosen  []rune
	seen    map[rune]bool
	errors  int
}

// NewTracker creates a tracker for the given answer.
func NewTracker(answer string) *Tracker {
	letters := make(map[rune]bool)
	for _, r := range strings.ToLower(answer) {
		if unicode.IsSpace(r) {
			continue
		}
		letters[r] = true
	}
	return &Tracker{
		answer:  answer,
		letters: letters,
		seen:    make(map[rune]bool),
	}
}

// Register records a guess. The letter is compared case-insensitively.
// A new wrong letter costs one error, up to MaxErrors.
func (t *Tracker) Register(letter rune) GuessResult {
	letter = unicode.ToLower(letter)
	if t.seen[letter] {
		return AlreadyChosen
	}

	t.seen[letter] = true
	t.chosen = append(t.chosen, letter)

	if t.letters[letter] {
		return Correct
	}
	if t.errors < MaxErrors {
		t.errors++
	}
	return Incorrect
}

// IsWon reports whether every distinct non-whitespace letter of the answer
// has been chosen.
func (t *Tracker) IsWon() bool {
	for r := range t.letters {
		if !t.seen[r] {
			return false
		}
	}
	return true
}

// IsLost reports whether the error count reached MaxErrors.
func (t *Tracker) IsLost() bool {
	return t.errors >= MaxErrors
}

// Errors returns the number of wrong guesses so far.
func (t *Tracker) Errors() int {
	return t.errors
}

// Answer returns the answer as it was entered.
func (t *Tracker) Answer() string {
	return t.answer
}

// Chosen returns the chosen letters in the order they were guessed.
func (t *Tracker) Chosen() string {
	return string(t.chosen)
}

// HasChosen reports whether letter was already guessed.
func (t *Tracker) HasChosen(letter rune) bool {
	return t.seen[unicode.ToLower(letter)]
}

// Remaining returns the answer letters not yet chosen, in answer order.
func (t *Tracker) Remaining() []rune {
	var out []rune
	added := make(map[rune]bool)
	for _, r := range strings.ToLower(t.answer) {
		if unicode.IsSpace(r) || t.seen[r] || added[r] {
			continue
		}
		added[r] = true
		out = append(out, r)
	}
	return out
}
