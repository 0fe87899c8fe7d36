package model

// RunState represents the lifecycle of the single tracked operation
type RunState string

const (
	// RunStateIdle means no operation is tracked
	RunStateIdle RunState = "Idle"

	// RunStateRunning means the external tool is running
	RunStateRunning RunState = "Running"

	// RunStateSucceeded means the external tool exited with code 0
	RunStateSucceeded RunState = "Succeeded"

	// RunStateFailed means the operation failed, was cancelled or could not be spawned
	RunStateFailed RunState = "Failed"
)

// String returns the string representation of RunState
func (rs RunState) String() string {
	return string(rs)
}

// IsActive returns true if an operation is in flight
func (rs RunState) IsActive() bool {
	return rs == RunStateRunning
}

// IsFinished returns true if the operation reached a terminal state (succeeded or failed)
func (rs RunState) IsFinished() bool {
	return rs == RunStateSucceeded || rs == RunStateFailed
}
