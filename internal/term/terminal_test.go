package term

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/ShayCichocki/hangman/internal/render"
)

func newTestTerminal(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return New(Options{In: strings.NewReader(input), Out: &out, Color: true}), &out
}

func TestTerminal_Show(t *testing.T) {
	term, out := newTestTerminal("")

	term.Show(render.Blanks("CAT", "c", "", 0))

	want := "C _ _   \n\nabcdefghijklmnopqrstuvwxyz\n"
	if out.String() != want {
		t.Errorf("Show wrote %q, want %q", out.String(), want)
	}
}

func TestTerminal_NoColorWhenNotTTY(t *testing.T) {
	term, out := newTestTerminal("")

	term.Echo(render.RoleIncorrect, "No")

	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("unexpected escape codes in %q", out.String())
	}
}

func TestTerminal_Prompt(t *testing.T) {
	term, out := newTestTerminal("Ada\r\n\n")

	got, err := term.Prompt("Enter your name", "No Name")
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if got != "Ada" {
		t.Errorf("Prompt = %q, want %q", got, "Ada")
	}
	if !strings.Contains(out.String(), "Enter your name: ") {
		t.Errorf("prompt label missing from %q", out.String())
	}

	got, err = term.Prompt("Enter your name", "No Name")
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if got != "No Name" {
		t.Errorf("Prompt with empty input = %q, want default", got)
	}
}

func TestTerminal_Prompt_LastLineWithoutNewline(t *testing.T) {
	term, _ := newTestTerminal("x")

	got, err := term.Prompt("Pick any letter", "")
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if got != "x" {
		t.Errorf("Prompt = %q, want %q", got, "x")
	}
}

func TestTerminal_Prompt_EOF(t *testing.T) {
	term, _ := newTestTerminal("")

	if _, err := term.Prompt("Pick any letter", ""); !errors.Is(err, io.EOF) {
		t.Errorf("Prompt error = %v, want io.EOF", err)
	}
}

func TestTerminal_PromptHidden_NotTTY(t *testing.T) {
	term, _ := newTestTerminal("secret words\n")

	got, err := term.PromptHidden("Answer")
	if err != nil {
		t.Fatalf("PromptHidden failed: %v", err)
	}
	if got != "secret words" {
		t.Errorf("PromptHidden = %q", got)
	}
}

func TestTerminal_Pause(t *testing.T) {
	term, _ := newTestTerminal("\nnext\n")

	if err := term.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	got, err := term.Prompt("after", "")
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}
	if got != "next" {
		t.Errorf("Pause consumed the wrong line, next prompt got %q", got)
	}

	if err := term.Pause(); err != nil {
		t.Errorf("Pause at EOF = %v, want nil", err)
	}
}

func TestTerminal_ClearAndWidthNotTTY(t *testing.T) {
	term, out := newTestTerminal("")

	term.Clear()
	if out.Len() != 0 {
		t.Errorf("Clear wrote %q to a non-terminal", out.String())
	}
	if term.Width() != DefaultWidth {
		t.Errorf("Width() = %d, want %d", term.Width(), DefaultWidth)
	}
}
