package model

import (
	"strings"
	"time"

	"gitlab.com/tozd/go/errors"
)

// ErrUnknownMode is returned when a mode name cannot be parsed
var ErrUnknownMode = errors.Base("unknown operation mode")

// Mode selects which external tool invocation an operation performs
type Mode string

const (
	// ModeCompress re-encodes a video with libx265
	ModeCompress Mode = "compress"

	// ModeAudio extracts the audio track into an mp3
	ModeAudio Mode = "audio"

	// ModeDownload fetches a remote video with a youtube-dl compatible downloader
	ModeDownload Mode = "download"
)

// Modes lists every supported mode in display order
func Modes() []Mode {
	return []Mode{ModeCompress, ModeAudio, ModeDownload}
}

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// Valid reports whether m is one of the supported modes
func (m Mode) Valid() bool {
	switch m {
	case ModeCompress, ModeAudio, ModeDownload:
		return true
	}
	return false
}

// ParseMode converts a user supplied name into a Mode
func ParseMode(name string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(name)))
	if !m.Valid() {
		return "", errors.Errorf("%w: %q", ErrUnknownMode, name)
	}
	return m, nil
}

// CommandSpec is an executable plus its literal argument vector.
// It is never joined into a shell string for execution.
type CommandSpec struct {
	Executable string
	Args       []string
}

// Argv returns a copy of the full argument vector, executable first
func (c CommandSpec) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Executable)
	return append(argv, c.Args...)
}

// String renders the command for logs only
func (c CommandSpec) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, a := range c.Argv() {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = "\"" + strings.ReplaceAll(a, "\"", "\\\"") + "\""
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// ResultKind classifies how an operation ended
type ResultKind string

const (
	ResultSucceeded   ResultKind = "Succeeded"
	ResultNonZeroExit ResultKind = "NonZeroExit"
	ResultSpawnFailed ResultKind = "SpawnFailed"
	ResultCancelled   ResultKind = "Cancelled"
)

// String returns the string representation of ResultKind
func (k ResultKind) String() string {
	return string(k)
}

// OperationResult is the terminal outcome of one operation
type OperationResult struct {
	OperationID string
	Mode        Mode
	Kind        ResultKind
	ExitCode    int
	Succeeded   bool
	Error       string // spawn or wait error, if any
	Stderr      string // tail of the tool's stderr
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Duration returns how long the operation ran
func (r OperationResult) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
