package runner

import (
	"context"
	"sync"
	"time"

	"github.com/ytget/video-tool/internal/model"
)

// Handle tracks one started operation.
type Handle struct {
	id        string
	mode      model.Mode
	spec      model.CommandSpec
	startedAt time.Time

	cancel context.CancelFunc
	events *eventQueue

	// guarded by Runner.mu
	cancelRequested bool

	resultMu sync.RWMutex
	result   *model.OperationResult

	done chan struct{}
}

// ID returns the operation id
func (h *Handle) ID() string { return h.id }

// Mode returns the operation mode
func (h *Handle) Mode() model.Mode { return h.mode }

// Spec returns the command being run
func (h *Handle) Spec() model.CommandSpec { return h.spec }

// StartedAt returns when the operation was started
func (h *Handle) StartedAt() time.Time { return h.startedAt }

// Info returns the description sent with the started event
func (h *Handle) Info() OperationInfo {
	return OperationInfo{
		ID:        h.id,
		Mode:      h.mode,
		Spec:      h.spec,
		StartedAt: h.startedAt,
	}
}

// Done is closed after the completed event has been delivered
func (h *Handle) Done() <-chan struct{} { return h.done }

// Result returns the terminal result once the operation has finished
func (h *Handle) Result() (model.OperationResult, bool) {
	h.resultMu.RLock()
	defer h.resultMu.RUnlock()
	if h.result == nil {
		return model.OperationResult{}, false
	}
	return *h.result, true
}

// Wait blocks until the operation has finished and its completed event was
// delivered, or ctx is done.
func (h *Handle) Wait(ctx context.Context) (model.OperationResult, error) {
	select {
	case <-h.done:
		res, _ := h.Result()
		return res, nil
	case <-ctx.Done():
		return model.OperationResult{}, ctx.Err()
	}
}

// setResult records result once; later calls are ignored.
func (h *Handle) setResult(result model.OperationResult) bool {
	h.resultMu.Lock()
	defer h.resultMu.Unlock()
	if h.result != nil {
		return false
	}
	h.result = &result
	return true
}
