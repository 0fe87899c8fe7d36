package runner

import "gitlab.com/tozd/go/errors"

var (
	ErrAlreadyRunning = errors.Base("operation already running")
	ErrNotRunning     = errors.Base("no operation running")
	ErrNotFinished    = errors.Base("operation not finished")
)
