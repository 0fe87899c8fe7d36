// Package operation is the inbound boundary used by the presentation layers.
// It turns an execute request (mode + input locator) into a command for the
// configured output directory and hands it to the runner.
package operation
