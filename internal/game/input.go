package game

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrInvalidGuess is returned when a guess is not exactly one character.
	ErrInvalidGuess = errors.New("has to be just one character")
	// ErrEmptyAnswer is returned for a blank answer.
	ErrEmptyAnswer = errors.New("answer is empty")
	// ErrNoLetters is returned for an answer without any letter in it.
	ErrNoLetters = errors.New("answer has no letters")
)

// ParseGuess turns a line of player input into a single lowercase rune.
// Surrounding whitespace is ignored; anything but one character is rejected.
func ParseGuess(input string) (rune, error) {
	s := strings.TrimSpace(input)
	if utf8.RuneCountInString(s) != 1 {
		return 0, ErrInvalidGuess
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.ToLower(r), nil
}

// ValidateAnswer checks that an answer can be played.
func ValidateAnswer(answer string) error {
	if strings.TrimSpace(answer) == "" {
		return ErrEmptyAnswer
	}
	for _, r := range answer {
		if unicode.IsLetter(r) {
			return nil
		}
	}
	return ErrNoLetters
}
