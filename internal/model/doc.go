// Package model defines the domain data structures shared by the runner, the
// operation service and the UI: operation modes, command specs, run states and
// operation results.
package model
