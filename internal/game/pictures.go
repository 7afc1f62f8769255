package game

import "fmt"

// Pictures are the gallows frames, indexed by error count.
// The last frame is the lost game.
var Pictures = [MaxErrors + 1]string{
	`
  +---+
  |   |
      |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`
  +---+
  |   |
  X   |
 /|\  |
 / \  |
      |
=========`,
}

// Picture returns the frame for the given error count.
// It panics when errors is outside [0, MaxErrors].
func Picture(errors int) string {
	if errors < 0 || errors > MaxErrors {
		panic(fmt.Sprintf("game: no picture for %d errors", errors))
	}
	return Pictures[errors]
}
