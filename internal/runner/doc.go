// Package runner supervises one external tool invocation at a time. It owns the
// run state machine (Idle -> Running -> Succeeded|Failed -> Idle), emits a fixed
// cadence progress heartbeat while the child runs, supports cancellation and
// delivers started/progress/completed events to a single observer through a
// per-operation queue so that process supervision never blocks on the caller.
package runner
