package runner

import (
	"context"
	"time"

	"github.com/ytget/video-tool/internal/model"
)

// OperationRunner defines the interface for the runner.
type OperationRunner interface {
	SetObserver(Observer)
	Start(mode model.Mode, spec model.CommandSpec) (*Handle, error)
	Cancel() error
	Reset() error
	State() model.RunState
	Current() *Handle
}

// Launcher spawns a CommandSpec as a child process. Cancelling ctx must
// terminate the child.
type Launcher interface {
	Launch(ctx context.Context, spec model.CommandSpec) (Process, error)
}

// Process is a spawned child.
type Process interface {
	// Wait blocks until the child exits. exitCode is the child's status; err is
	// set only when waiting itself failed.
	Wait() (exitCode int, err error)

	// Stderr returns the captured tail of the child's stderr.
	Stderr() string
}

// OperationInfo describes an operation that has just started.
type OperationInfo struct {
	ID        string
	Mode      model.Mode
	Spec      model.CommandSpec
	StartedAt time.Time
}

// Observer receives lifecycle events. Calls are made from a delivery
// goroutine, one at a time and in order.
type Observer interface {
	OnStarted(info OperationInfo)
	OnProgress(fraction float64)
	OnCompleted(result model.OperationResult)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Started   func(OperationInfo)
	Progress  func(float64)
	Completed func(model.OperationResult)
}

func (f ObserverFuncs) OnStarted(info OperationInfo) {
	if f.Started != nil {
		f.Started(info)
	}
}

func (f ObserverFuncs) OnProgress(fraction float64) {
	if f.Progress != nil {
		f.Progress(fraction)
	}
}

func (f ObserverFuncs) OnCompleted(result model.OperationResult) {
	if f.Completed != nil {
		f.Completed(result)
	}
}
