// Package exec provides an interface for running external commands.
package exec

import (
	"context"
)

// CommandRunner defines the interface for running external commands.
// This abstraction allows faking the voice command in tests.
type CommandRunner interface {
	// Run executes a command and waits for it to finish.
	// It returns combined stdout/stderr output.
	Run(ctx context.Context, name string, args ...string) (output []byte, err error)

	// LookPath reports the full path of an executable found in PATH.
	LookPath(name string) (string, error)
}
