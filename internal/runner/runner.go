package runner

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ytget/video-tool/internal/model"
)

// Runner defaults
const (
	DefaultTickInterval = 100 * time.Millisecond
	DefaultTickStep     = 0.01
	DefaultQueueSize    = 64

	// SyntheticExitCode is reported for operations that were cancelled or
	// never spawned.
	SyntheticExitCode = -1

	OperationIDPrefix = "op-"
)

// Options configures a Runner
type Options struct {
	// TickInterval is the heartbeat cadence.
	TickInterval time.Duration

	// TickStep is how much the progress fraction advances per tick.
	TickStep float64

	// QueueSize bounds the per-operation event queue. Progress ticks that do
	// not fit are dropped.
	QueueSize int

	Logger *zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.TickStep <= 0 || o.TickStep > 1 {
		o.TickStep = DefaultTickStep
	}
	if o.QueueSize <= 0 {
		o.QueueSize = DefaultQueueSize
	}
	return o
}

// Runner runs one external command at a time
type Runner struct {
	launcher Launcher
	opts     Options
	log      zerolog.Logger

	mu        sync.Mutex
	state     model.RunState
	current   *Handle
	observer  Observer
	lastQueue *eventQueue
}

var _ OperationRunner = (*Runner)(nil)

// New creates a runner that spawns processes through launcher
func New(launcher Launcher, opts Options) *Runner {
	opts = opts.withDefaults()

	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Runner{
		launcher: launcher,
		opts:     opts,
		log:      logger.With().Str("component", "runner").Logger(),
		state:    model.RunStateIdle,
	}
}

// SetObserver sets the receiver of lifecycle events. It applies to operations
// started afterwards.
func (r *Runner) SetObserver(observer Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = observer
}

// State returns the current run state
func (r *Runner) State() model.RunState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Current returns the tracked operation, or nil when idle
func (r *Runner) Current() *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Start spawns spec and begins tracking it. It fails with ErrAlreadyRunning
// while another operation is running. A terminal previous operation is reset
// implicitly. Spawn failures are not returned here: the handle completes with
// a SpawnFailed result instead.
func (r *Runner) Start(mode model.Mode, spec model.CommandSpec) (*Handle, error) {
	r.mu.Lock()
	if r.state.IsActive() {
		r.mu.Unlock()
		return nil, ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &Handle{
		id:        generateOperationID(),
		mode:      mode,
		spec:      spec,
		startedAt: time.Now(),
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	h.events = newEventQueue(r.observer, r.opts.QueueSize, r.lastQueue)
	r.lastQueue = h.events
	r.current = h
	r.state = model.RunStateRunning
	r.mu.Unlock()

	logger := r.log.With().Str("operation_id", h.id).Str("mode", mode.String()).Logger()
	logger.Info().Str("command", spec.String()).Msg("operation started")

	// The queue is fresh, so this never blocks.
	h.events.push(event{kind: eventStarted, info: h.Info()})

	proc, err := r.launcher.Launch(ctx, spec)
	if err != nil {
		result := r.newResult(h, model.ResultSpawnFailed, SyntheticExitCode)
		result.Error = err.Error()
		if r.cancelRequested(h) {
			result.Kind = model.ResultCancelled
		}
		logger.Error().Err(err).Str("kind", result.Kind.String()).Msg("failed to spawn tool")
		r.finish(h, result)
		return h, nil
	}

	go r.supervise(h, proc, logger)

	return h, nil
}

// Cancel requests termination of the running operation. The completed event
// with a Cancelled result follows once the child has actually exited.
func (r *Runner) Cancel() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.state.IsActive() {
		return ErrNotRunning
	}

	h := r.current
	if h.cancelRequested {
		return nil
	}
	h.cancelRequested = true
	h.cancel()

	r.log.Info().Str("operation_id", h.id).Msg("cancellation requested")
	return nil
}

// Reset acknowledges a finished operation and returns the runner to Idle.
func (r *Runner) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state.IsActive() {
		return ErrNotFinished
	}
	r.state = model.RunStateIdle
	r.current = nil
	return nil
}

type waitResult struct {
	exitCode int
	err      error
}

// supervise waits for proc while emitting heartbeat ticks. It is the only
// goroutine producing progress and completion for h, so no tick can follow
// the completed event.
func (r *Runner) supervise(h *Handle, proc Process, logger zerolog.Logger) {
	waitCh := make(chan waitResult, 1)
	go func() {
		code, err := proc.Wait()
		waitCh <- waitResult{exitCode: code, err: err}
	}()

	ticker := time.NewTicker(r.opts.TickInterval)
	defer ticker.Stop()
	tickC := ticker.C

	ticks := 0
	fraction := 0.0

	for {
		select {
		case <-tickC:
			ticks++
			fraction = math.Min(1, float64(ticks)*r.opts.TickStep)
			if !h.events.offer(event{kind: eventProgress, fraction: fraction}) {
				logger.Debug().Float64("fraction", fraction).Msg("progress tick dropped")
			}
			if fraction >= 1 {
				ticker.Stop()
				tickC = nil
			}

		case res := <-waitCh:
			result := r.classify(h, res, proc.Stderr())
			if result.Succeeded && fraction < 1 {
				h.events.push(event{kind: eventProgress, fraction: 1})
			}

			ev := logger.Info()
			if !result.Succeeded {
				ev = logger.Warn()
			}
			ev.Str("kind", result.Kind.String()).
				Int("exit_code", result.ExitCode).
				Dur("elapsed", result.Duration()).
				Msg("operation finished")

			r.finish(h, result)
			return
		}
	}
}

func (r *Runner) classify(h *Handle, res waitResult, stderr string) model.OperationResult {
	if r.cancelRequested(h) {
		result := r.newResult(h, model.ResultCancelled, SyntheticExitCode)
		result.Stderr = stderr
		return result
	}

	code := res.exitCode
	if res.err != nil && code == 0 {
		code = SyntheticExitCode
	}

	kind := model.ResultSucceeded
	if code != 0 {
		kind = model.ResultNonZeroExit
	}

	result := r.newResult(h, kind, code)
	result.Stderr = stderr
	if res.err != nil {
		result.Error = res.err.Error()
	} else if kind == model.ResultNonZeroExit {
		result.Error = fmt.Sprintf("%s exited with code %d", h.spec.Executable, code)
	}
	return result
}

func (r *Runner) newResult(h *Handle, kind model.ResultKind, exitCode int) model.OperationResult {
	return model.OperationResult{
		OperationID: h.id,
		Mode:        h.mode,
		Kind:        kind,
		ExitCode:    exitCode,
		Succeeded:   kind == model.ResultSucceeded,
		StartedAt:   h.startedAt,
		FinishedAt:  time.Now(),
	}
}

func (r *Runner) cancelRequested(h *Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return h.cancelRequested
}

// finish moves the runner to the terminal state for h and emits the
// completed event exactly once.
func (r *Runner) finish(h *Handle, result model.OperationResult) {
	r.mu.Lock()
	if !h.setResult(result) {
		r.mu.Unlock()
		return
	}
	if r.current == h {
		if result.Succeeded {
			r.state = model.RunStateSucceeded
		} else {
			r.state = model.RunStateFailed
		}
	}
	r.mu.Unlock()

	h.cancel()

	h.events.push(event{kind: eventCompleted, result: result})
	h.events.close()

	go func() {
		<-h.events.done
		close(h.done)
	}()
}

// generateOperationID generates a unique, time ordered operation id
func generateOperationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(OperationIDPrefix+"%d", time.Now().UnixNano())
	}
	return OperationIDPrefix + id.String()
}
