// Package diag builds the diagnostic logger. Diagnostics go to an optional
// log file and, with -v, to stderr; the game screen itself never goes
// through here.
package diag

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options controls where diagnostics are written.
type Options struct {
	// Verbosity is the -v count: 1 echoes info to stderr, 2 echoes debug.
	Verbosity int
	// File is an optional log file path. Parent directories are created.
	File string
	// Level is the minimum level written to File ("info" when empty).
	Level string
	// Stderr receives console output. Defaults to os.Stderr.
	Stderr io.Writer
}

// Logger is a zerolog logger that owns its log file.
type Logger struct {
	zerolog.Logger
	file *os.File
}

// New creates a logger. With no file and zero verbosity it discards
// everything.
func New(opts Options) (*Logger, error) {
	var writers []io.Writer
	level := zerolog.Disabled

	l := &Logger{}
	if opts.File != "" {
		fileLevel := zerolog.InfoLevel
		if opts.Level != "" {
			parsed, err := zerolog.ParseLevel(opts.Level)
			if err != nil {
				return nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
			}
			fileLevel = parsed
		}

		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
		writers = append(writers, f)
		level = minLevel(level, fileLevel)
	}

	if opts.Verbosity > 0 {
		out := opts.Stderr
		if out == nil {
			out = os.Stderr
		}
		writers = append(writers, zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05.000"})
		consoleLevel := zerolog.InfoLevel
		if opts.Verbosity >= 2 {
			consoleLevel = zerolog.DebugLevel
		}
		level = minLevel(level, consoleLevel)
	}

	if len(writers) == 0 {
		return Nop(), nil
	}

	l.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	l.Debug().Str("started", time.Now().Format(time.RFC3339)).Msg("diagnostic log opened")

	return l, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Close closes the log file, if any. Safe to call on a nil logger and
// more than once.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil
	return f.Close()
}

// minLevel returns the more verbose of two levels. Disabled loses to any
// real level.
func minLevel(a, b zerolog.Level) zerolog.Level {
	if a == zerolog.Disabled {
		return b
	}
	if b == zerolog.Disabled {
		return a
	}
	if a < b {
		return a
	}
	return b
}
