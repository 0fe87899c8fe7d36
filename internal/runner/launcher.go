package runner

import (
	"context"
	"os/exec"
	"time"

	"github.com/rs/zerolog/log"
	"gitlab.com/tozd/go/errors"

	"github.com/ytget/video-tool/internal/model"
)

// Launcher defaults
const (
	DefaultWaitDelay  = 5 * time.Second
	DefaultStderrTail = 4096
)

// ExecLauncher spawns tools directly with os/exec. Arguments are passed as a
// literal vector; no shell is involved.
type ExecLauncher struct {
	// WaitDelay bounds how long Wait waits for stderr to drain after the
	// child exits or is killed.
	WaitDelay time.Duration

	// StderrTail is how many trailing stderr bytes are kept.
	StderrTail int

	// Dir is the working directory of the child; empty means inherit.
	Dir string
}

// NewExecLauncher creates a launcher with default settings
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{
		WaitDelay:  DefaultWaitDelay,
		StderrTail: DefaultStderrTail,
	}
}

// Launch starts spec.Executable with spec.Args
func (l *ExecLauncher) Launch(ctx context.Context, spec model.CommandSpec) (Process, error) {
	if spec.Executable == "" {
		return nil, errors.New("empty executable")
	}

	cmd := exec.CommandContext(ctx, spec.Executable, spec.Args...)
	cmd.Dir = l.Dir
	cmd.WaitDelay = l.WaitDelay

	stderr := newTailBuffer(l.StderrTail)
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, errors.Errorf("starting %s: %w", spec.Executable, err)
	}

	return &execProcess{cmd: cmd, stderr: stderr}, nil
}

type execProcess struct {
	cmd    *exec.Cmd
	stderr *tailBuffer
}

func (p *execProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	// The child exited cleanly but something it spawned still holds stderr.
	if errors.Is(err, exec.ErrWaitDelay) && p.cmd.ProcessState != nil && p.cmd.ProcessState.Success() {
		log.Warn().Str("executable", p.cmd.Path).Msg("stderr still open after exit, output may be truncated")
		return 0, nil
	}

	code := -1
	if p.cmd.ProcessState != nil {
		code = p.cmd.ProcessState.ExitCode()
	}
	return code, errors.Errorf("waiting for %s: %w", p.cmd.Path, err)
}

func (p *execProcess) Stderr() string {
	return p.stderr.String()
}
