package main

import (
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"

	"github.com/ytget/video-tool/internal/config"
	"github.com/ytget/video-tool/internal/logging"
	"github.com/ytget/video-tool/internal/operation"
	"github.com/ytget/video-tool/internal/platform"
	"github.com/ytget/video-tool/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.video-tool"
	AppName = "Video Tool"

	// EnvDebug enables debug logging when set to a non-empty value
	EnvDebug = "VIDEO_TOOL_DEBUG"
)

func main() {
	logging.Setup(os.Getenv(EnvDebug) != "", os.Stderr)
	log.Info().Str("version", version).Msgf("%s starting", AppName)

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(AppName)

	// The output directory is resolved once per process lifetime
	settings := config.NewSettings(myApp)
	rt := settings.Runtime()
	if err := platform.CreateDirectoryIfNotExists(rt.OutputDir); err != nil {
		log.Error().Err(err).Str("dir", rt.OutputDir).Msg("failed to ensure output dir")
	}

	svc := operation.NewFromRuntime(rt)

	ui.NewRootUI(myWindow, myApp, svc, settings)

	myWindow.ShowAndRun()
}
