package operation

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gitlab.com/tozd/go/errors"

	"github.com/ytget/video-tool/internal/command"
	"github.com/ytget/video-tool/internal/config"
	"github.com/ytget/video-tool/internal/model"
	"github.com/ytget/video-tool/internal/platform"
	"github.com/ytget/video-tool/internal/runner"
)

// ErrValidation is returned by Validate for requests the caller must reject
var ErrValidation = errors.Base("invalid operation request")

// Validate checks what the presentation layer must enforce before Execute:
// a supported mode and a non-empty input locator.
func Validate(mode model.Mode, input string) error {
	if !mode.Valid() {
		return errors.Errorf("%w: no operation selected", ErrValidation)
	}
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return errors.Errorf("%w: empty input file or URL", ErrValidation)
	}
	// the locator is a positional argument; a leading dash would be read as a tool option
	if strings.HasPrefix(trimmed, "-") {
		return errors.Errorf("%w: input must not start with '-': %q", ErrValidation, trimmed)
	}
	return nil
}

// Options configures a Service
type Options struct {
	OutputDir string
	Naming    config.NamingPolicy
	Logger    *zerolog.Logger
}

// Service dispatches execute requests to the runner
type Service struct {
	runner  runner.OperationRunner
	builder command.Builder
	opts    Options
	log     zerolog.Logger
}

// NewService creates a service. The output directory is fixed for the
// lifetime of the service.
func NewService(r runner.OperationRunner, builder command.Builder, opts Options) *Service {
	if opts.OutputDir == "" {
		opts.OutputDir = platform.HomeDir()
	}
	if !opts.Naming.Valid() {
		opts.Naming = config.DefaultNaming
	}

	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Service{
		runner:  r,
		builder: builder,
		opts:    opts,
		log:     logger.With().Str("component", "operation").Logger(),
	}
}

// NewFromRuntime wires an exec-backed runner and a service from resolved
// configuration.
func NewFromRuntime(rt config.Runtime) *Service {
	r := runner.New(runner.NewExecLauncher(), runner.Options{
		TickInterval: rt.TickInterval,
		TickStep:     rt.TickStep,
	})
	return NewService(r, rt.Builder(), Options{OutputDir: rt.OutputDir, Naming: rt.Naming})
}

// SetObserver forwards lifecycle events of subsequent operations to observer
func (s *Service) SetObserver(observer runner.Observer) {
	s.runner.SetObserver(observer)
}

// Execute starts mode on input. The caller is expected to have called
// Validate. It fails with runner.ErrAlreadyRunning while busy.
func (s *Service) Execute(mode model.Mode, input string) (*runner.Handle, error) {
	if s.runner.State().IsActive() {
		return nil, runner.ErrAlreadyRunning
	}

	basename := ""
	if s.opts.Naming == config.NamingUnique && mode != model.ModeDownload {
		name, err := platform.UniqueOutputName(s.opts.OutputDir, command.DefaultOutputName(mode))
		if err != nil {
			return nil, errors.Errorf("choosing output name: %w", err)
		}
		basename = name
	}

	spec := s.builder.BuildNamed(mode, input, s.opts.OutputDir, basename)
	s.log.Debug().Str("mode", mode.String()).Strs("argv", spec.Argv()).Msg("execute requested")

	h, err := s.runner.Start(mode, spec)
	if err != nil {
		return nil, errors.Errorf("starting %s: %w", mode, err)
	}
	return h, nil
}

// Cancel cancels the running operation
func (s *Service) Cancel() error {
	return s.runner.Cancel()
}

// Reset acknowledges the finished operation
func (s *Service) Reset() error {
	return s.runner.Reset()
}

// Current returns the tracked operation, or nil when idle
func (s *Service) Current() *runner.Handle {
	return s.runner.Current()
}

// State returns the runner state
func (s *Service) State() model.RunState {
	return s.runner.State()
}

// OutputDir returns the directory outputs are written to
func (s *Service) OutputDir() string {
	return s.opts.OutputDir
}
