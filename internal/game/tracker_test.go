package game

import (
	"testing"
)

func register(t *Tracker, letters string) {
	for _, r := range letters {
		t.Register(r)
	}
}

func TestTracker_Register(t *testing.T) {
	tests := []struct {
		name       string
		answer     string
		letter     rune
		want       GuessResult
		wantErrors int
	}{
		{"letter in answer", "CAT", 'c', Correct, 0},
		{"uppercase letter in answer", "cat", 'A', Correct, 0},
		{"letter not in answer", "CAT", 'z', Incorrect, 1},
		{"space is never correct", "big cat", ' ', Incorrect, 1},
		{"digit in answer", "r2d2", '2', Correct, 0},
		{"punctuation not in answer", "cat", '!', Incorrect, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(tt.answer)
			got := tr.Register(tt.letter)
			if got != tt.want {
				t.Errorf("Register(%q) = %v, want %v", tt.letter, got, tt.want)
			}
			if tr.Errors() != tt.wantErrors {
				t.Errorf("Errors() = %d, want %d", tr.Errors(), tt.wantErrors)
			}
		})
	}
}

func TestTracker_RepeatedGuess(t *testing.T) {
	tr := NewTracker("CAT")

	if got := tr.Register('c'); got != Correct {
		t.Fatalf("first Register('c') = %v, want Correct", got)
	}
	if tr.Chosen() != "c" {
		t.Fatalf("Chosen() = %q, want %q", tr.Chosen(), "c")
	}

	if got := tr.Register('C'); got != AlreadyChosen {
		t.Errorf("second Register('C') = %v, want AlreadyChosen", got)
	}
	if tr.Chosen() != "c" {
		t.Errorf("Chosen() after repeat = %q, want %q", tr.Chosen(), "c")
	}
	if tr.Errors() != 0 {
		t.Errorf("Errors() after repeat = %d, want 0", tr.Errors())
	}
}

func TestTracker_RepeatedWrongGuessCostsOnce(t *testing.T) {
	tr := NewTracker("CAT")

	tr.Register('z')
	tr.Register('z')
	tr.Register('Z')

	if tr.Errors() != 1 {
		t.Errorf("Errors() = %d, want 1", tr.Errors())
	}
	if len(tr.Chosen()) != 1 {
		t.Errorf("len(Chosen()) = %d, want 1", len(tr.Chosen()))
	}
}

func TestTracker_IsWon(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		chosen string
		want   bool
	}{
		{"nothing chosen", "CAT", "", false},
		{"all letters", "CAT", "cat", true},
		{"all letters other order", "CAT", "tac", true},
		{"extra wrong letters", "CAT", "xcyatz", true},
		{"missing one", "CAT", "ca", false},
		{"spaces do not count", "big cat", "bigcat", true},
		{"tabs do not count", "ice\tcream", "icream", true},
		{"non-breaking spaces do not count", "ice\u00a0cream", "icream", true},
		{"repeated letters need one guess", "banana", "ban", true},
		{"punctuation must be guessed", "it's", "its", false},
		{"punctuation guessed", "it's", "its'", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(tt.answer)
			register(tr, tt.chosen)
			if got := tr.IsWon(); got != tt.want {
				t.Errorf("IsWon() with answer %q chosen %q = %v, want %v", tt.answer, tt.chosen, got, tt.want)
			}
		})
	}
}

func TestTracker_IsWonMatchesRemaining(t *testing.T) {
	answers := []string{"CAT", "hello world", "Mississippi", "a b c", "x", "ice\tcream", "new\u00a0york"}
	guesses := "etaoinshrdlcumwfgypbvkjxqz"

	for _, answer := range answers {
		tr := NewTracker(answer)
		for _, r := range guesses {
			tr.Register(r)
			won := tr.IsWon()
			if won != (len(tr.Remaining()) == 0) {
				t.Fatalf("answer %q after %q: IsWon() = %v but Remaining() = %q", answer, tr.Chosen(), won, string(tr.Remaining()))
			}
		}
	}
}

func TestTracker_Lost(t *testing.T) {
	tr := NewTracker("DOG")
	register(tr, "xyzqrs")

	if tr.Errors() != MaxErrors {
		t.Errorf("Errors() = %d, want %d", tr.Errors(), MaxErrors)
	}
	if !tr.IsLost() {
		t.Error("IsLost() = false, want true")
	}
	if tr.IsWon() {
		t.Error("IsWon() = true, want false")
	}
}

func TestTracker_ErrorsBounded(t *testing.T) {
	tr := NewTracker("DOG")
	prev := 0
	for _, r := range "abcefhijklmnpqrstuvwxyz" {
		tr.Register(r)
		if tr.Errors() < prev {
			t.Fatalf("Errors() decreased from %d to %d", prev, tr.Errors())
		}
		if tr.Errors() > MaxErrors {
			t.Fatalf("Errors() = %d, exceeds %d", tr.Errors(), MaxErrors)
		}
		prev = tr.Errors()
	}
	if !tr.IsLost() {
		t.Error("IsLost() = false after many wrong guesses")
	}
}

func TestTracker_Remaining(t *testing.T) {
	tr := NewTracker("Hello World")
	register(tr, "lo")

	if got := string(tr.Remaining()); got != "hewrd" {
		t.Errorf("Remaining() = %q, want %q", got, "hewrd")
	}
}

func TestGuessResult_String(t *testing.T) {
	tests := []struct {
		result GuessResult
		want   string
	}{
		{AlreadyChosen, "already_chosen"},
		{Correct, "correct"},
		{Incorrect, "incorrect"},
		{GuessResult(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.result.String(); got != tt.want {
			t.Errorf("GuessResult(%d).String() = %q, want %q", tt.result, got, tt.want)
		}
	}
}
