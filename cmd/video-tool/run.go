package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/video-tool/internal/model"
	"github.com/ytget/video-tool/internal/runner"
)

// exitCancelled is the conventional exit status after SIGINT
const exitCancelled = 130

// executor is the part of the operation service the command line drives
type executor interface {
	SetObserver(observer runner.Observer)
	Execute(mode model.Mode, input string) (*runner.Handle, error)
	Cancel() error
	OutputDir() string
}

// resultError reports an operation that finished without success
type resultError struct {
	result model.OperationResult
}

func (e *resultError) Error() string {
	r := e.result
	switch r.Kind {
	case model.ResultCancelled:
		return fmt.Sprintf("%s cancelled", r.Mode)
	case model.ResultSpawnFailed:
		return fmt.Sprintf("%s could not start: %s", r.Mode, r.Error)
	default:
		return fmt.Sprintf("%s failed with exit code %d", r.Mode, r.ExitCode)
	}
}

// exitCode maps a command error to the process exit status
func exitCode(err error) int {
	var re *resultError
	if !errors.As(err, &re) {
		return 1
	}
	switch {
	case re.result.Kind == model.ResultCancelled:
		return exitCancelled
	case re.result.ExitCode > 0 && re.result.ExitCode < 256:
		return re.result.ExitCode
	default:
		return 1
	}
}

// runOperation executes mode on input, renders heartbeat progress to w and
// cancels the operation when ctx is done.
func runOperation(ctx context.Context, exec executor, mode model.Mode, input string, w io.Writer) error {
	progress := make(chan float64, 1)
	exec.SetObserver(runner.ObserverFuncs{
		Progress: func(fraction float64) {
			// keep only the newest fraction
			select {
			case <-progress:
			default:
			}
			progress <- fraction
		},
	})

	h, err := exec.Execute(mode, input)
	if err != nil {
		return errors.Errorf("executing %s: %w", mode, err)
	}

	log.Debug().
		Str("operation_id", h.ID()).
		Time("started_at", h.StartedAt()).
		Strs("argv", h.Spec().Argv()).
		Msg("operation started")

	bar, err := pterm.DefaultProgressbar.
		WithTotal(100).
		WithTitle(mode.String()).
		WithWriter(w).
		Start()
	if err != nil {
		return errors.Errorf("starting progress bar: %w", err)
	}

	var g errgroup.Group

	// render loop
	g.Go(func() error {
		shown := 0
		render := func(fraction float64) {
			pct := int(fraction * 100)
			if pct > shown {
				bar.Add(pct - shown)
				shown = pct
			}
		}
		for {
			select {
			case f := <-progress:
				render(f)
			case <-h.Done():
				select {
				case f := <-progress:
					render(f)
				default:
				}
				return nil
			}
		}
	})

	// signal watcher
	g.Go(func() error {
		select {
		case <-ctx.Done():
			log.Info().Str("operation_id", h.ID()).Msg("interrupt received, cancelling")
			if err := exec.Cancel(); err != nil && !errors.Is(err, runner.ErrNotRunning) {
				return errors.Errorf("cancelling %s: %w", mode, err)
			}
			return nil
		case <-h.Done():
			return nil
		}
	})

	gErr := g.Wait()
	_, _ = bar.Stop()
	if gErr != nil {
		return gErr
	}

	result, _ := h.Result()
	if result.Succeeded {
		pterm.Success.WithWriter(w).Printfln("%s finished in %s, output in %s",
			mode, result.Duration().Round(10*time.Millisecond), exec.OutputDir())
		return nil
	}

	if tail := strings.TrimSpace(result.Stderr); tail != "" {
		pterm.Warning.WithWriter(w).Println(tail)
	}
	return &resultError{result: result}
}
