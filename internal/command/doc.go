// Package command maps an operation mode, an input locator and an output
// directory to the exact external tool invocation. Building is pure: no
// filesystem access, no process spawning.
package command
