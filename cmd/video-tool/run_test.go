package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/ytget/video-tool/internal/command"
	"github.com/ytget/video-tool/internal/model"
	"github.com/ytget/video-tool/internal/operation"
	"github.com/ytget/video-tool/internal/runner"
)

type scriptedProcess struct {
	ctx   context.Context
	code  int
	delay time.Duration
	block bool
}

func (p *scriptedProcess) Wait() (int, error) {
	if p.block {
		<-p.ctx.Done()
		return -1, p.ctx.Err()
	}
	select {
	case <-time.After(p.delay):
		return p.code, nil
	case <-p.ctx.Done():
		return -1, p.ctx.Err()
	}
}

func (p *scriptedProcess) Stderr() string {
	if p.code != 0 {
		return "conversion failed"
	}
	return ""
}

type scriptedLauncher struct {
	code     int
	block    bool
	launched chan model.CommandSpec
}

func (l *scriptedLauncher) Launch(ctx context.Context, spec model.CommandSpec) (runner.Process, error) {
	if l.launched != nil {
		l.launched <- spec
	}
	return &scriptedProcess{ctx: ctx, code: l.code, delay: 20 * time.Millisecond, block: l.block}, nil
}

func newTestService(t *testing.T, l runner.Launcher) *operation.Service {
	t.Helper()
	r := runner.New(l, runner.Options{TickInterval: time.Millisecond, TickStep: 0.1})
	return operation.NewService(r, command.NewBuilder("", ""), operation.Options{OutputDir: t.TempDir()})
}

func TestRunOperationSuccess(t *testing.T) {
	var out bytes.Buffer
	svc := newTestService(t, &scriptedLauncher{code: 0})

	err := runOperation(context.Background(), svc, model.ModeCompress, "in.mov", &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "compress finished")
}

func TestRunOperationNonZeroExit(t *testing.T) {
	var out bytes.Buffer
	svc := newTestService(t, &scriptedLauncher{code: 3})

	err := runOperation(context.Background(), svc, model.ModeAudio, "in.mov", &out)
	require.Error(t, err)

	var re *resultError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, model.ResultNonZeroExit, re.result.Kind)
	assert.Equal(t, 3, exitCode(err))
	assert.Contains(t, err.Error(), "exit code 3")
	assert.Contains(t, out.String(), "conversion failed")
}

func TestRunOperationCancelledByContext(t *testing.T) {
	var out bytes.Buffer
	launched := make(chan model.CommandSpec, 1)
	svc := newTestService(t, &scriptedLauncher{block: true, launched: launched})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		<-launched
		cancel()
	}()

	err := runOperation(ctx, svc, model.ModeDownload, "https://example.com/v", &out)
	require.Error(t, err)

	var re *resultError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, model.ResultCancelled, re.result.Kind)
	assert.Equal(t, exitCancelled, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("boom")))
	assert.Equal(t, 1, exitCode(&resultError{result: model.OperationResult{Kind: model.ResultSpawnFailed, ExitCode: -1}}))
	assert.Equal(t, 1, exitCode(&resultError{result: model.OperationResult{Kind: model.ResultNonZeroExit, ExitCode: 300}}))
	assert.Equal(t, 2, exitCode(errors.Errorf("wrapped: %w", &resultError{result: model.OperationResult{Kind: model.ResultNonZeroExit, ExitCode: 2}})))
}

func TestModeCommandsRegistered(t *testing.T) {
	cmd := newRootCmd()

	for _, m := range model.Modes() {
		sub, _, err := cmd.Find([]string{m.String()})
		require.NoError(t, err)
		assert.Equal(t, m.String(), sub.Name())
	}

	for _, name := range []string{"config", "output-dir", "debug"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	// compress uses libx265
	assert.Contains(t, cmd.Long, "H.265/HEVC")
	assert.NotContains(t, cmd.Long, "H.264")
}

func TestModeCommandRejectsLeadingDash(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"download", "--", "--exec=touch /tmp/x"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, operation.ErrValidation))
}

func TestRunCommandParsesMode(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"run", "transcode", "in.mov"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnknownMode))

	cmd = newRootCmd()
	cmd.SetArgs([]string{"run", "AUDIO", "  "})
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err = cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, operation.ErrValidation), "mode parsed, blank input rejected")
}

func TestModeCommandRejectsBlankInput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"compress", "  "})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, operation.ErrValidation))
}
