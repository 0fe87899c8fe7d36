package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	rootCmd := newRootCmd()
	rootCmd.Version = version

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		pterm.Error.Println(err)
		os.Exit(exitCode(err))
	}
}
