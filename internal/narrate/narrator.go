// Package narrate speaks short phrases out loud through the operating
// system's voice command.
package narrate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShayCichocki/hangman/internal/exec"
)

// ErrRefused is returned when the words hit the denylist.
var ErrRefused = errors.New("refused to say a denylisted word")

// Narrator speaks words.
type Narrator interface {
	Say(ctx context.Context, words ...string) error
}

// Options configures New.
type Options struct {
	Enabled bool
	Command string
	Args    []string
	// Delay is how long the silent narrator pauses instead of speaking.
	Delay  time.Duration
	Policy *Policy
}

// New returns a Voice when sound is enabled and the command can be found,
// otherwise a Silent narrator.
func New(opts Options, runner exec.CommandRunner, log zerolog.Logger) Narrator {
	if !opts.Enabled {
		return Silent{Delay: opts.Delay}
	}
	if _, err := runner.LookPath(opts.Command); err != nil {
		log.Warn().Err(err).Str("command", opts.Command).Msg("voice command not found, sound disabled")
		return Silent{Delay: opts.Delay}
	}
	return &Voice{
		runner:  runner,
		command: opts.Command,
		args:    opts.Args,
		policy:  opts.Policy,
		log:     log,
	}
}

// Voice runs an external text-to-speech command and waits for it to exit.
type Voice struct {
	runner  exec.CommandRunner
	command string
	args    []string
	policy  *Policy
	log     zerolog.Logger
}

// NewVoice creates a Voice without checking that the command exists.
func NewVoice(runner exec.CommandRunner, command string, args []string, policy *Policy, log zerolog.Logger) *Voice {
	return &Voice{
		runner:  runner,
		command: command,
		args:    args,
		policy:  policy,
		log:     log,
	}
}

// Say speaks the words. Denylisted words are refused before anything runs.
func (v *Voice) Say(ctx context.Context, words ...string) error {
	if len(words) == 0 {
		return nil
	}
	if word, blocked := v.policy.Blocked(words); blocked {
		v.log.Debug().Str("word", word).Msg("narration refused")
		return ErrRefused
	}

	args := append(append([]string{}, v.args...), words...)
	v.log.Debug().Str("command", v.command).Strs("words", words).Msg("say")

	out, err := v.runner.Run(ctx, v.command, args...)
	if err != nil {
		return fmt.Errorf("run %s: %w: %s", v.command, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Silent replaces speech with a short pause.
type Silent struct {
	Delay time.Duration
}

// Say waits for Delay or until ctx is done.
func (s Silent) Say(ctx context.Context, words ...string) error {
	if s.Delay <= 0 {
		return nil
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var (
	_ Narrator = (*Voice)(nil)
	_ Narrator = Silent{}
)
