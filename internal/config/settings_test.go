package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputDirectory(t *testing.T) {
	t.Setenv("HOME", "/home/u")
	app := test.NewApp()
	settings := NewSettings(app)

	// Default is the user's home directory
	if dir := settings.GetOutputDirectory(); dir != "/home/u" {
		t.Errorf("Expected default output directory /home/u, got %s", dir)
	}

	customDir := "/custom/output"
	settings.SetOutputDirectory(customDir)

	if dir := settings.GetOutputDirectory(); dir != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, dir)
	}
}

func TestToolPaths(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetFFmpegPath() != "ffmpeg" {
		t.Errorf("Expected default ffmpeg, got %s", settings.GetFFmpegPath())
	}
	if settings.GetDownloaderPath() != "youtube-dl" {
		t.Errorf("Expected default youtube-dl, got %s", settings.GetDownloaderPath())
	}

	settings.SetFFmpegPath("/opt/bin/ffmpeg")
	settings.SetDownloaderPath("yt-dlp")

	if settings.GetFFmpegPath() != "/opt/bin/ffmpeg" {
		t.Errorf("Expected /opt/bin/ffmpeg, got %s", settings.GetFFmpegPath())
	}
	if settings.GetDownloaderPath() != "yt-dlp" {
		t.Errorf("Expected yt-dlp, got %s", settings.GetDownloaderPath())
	}

	// Empty restores the default
	settings.SetDownloaderPath("")
	if settings.GetDownloaderPath() != "youtube-dl" {
		t.Errorf("Expected youtube-dl after reset, got %s", settings.GetDownloaderPath())
	}
}

func TestTickSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetTickInterval() != DefaultTickInterval {
		t.Errorf("Expected default interval %v, got %v", DefaultTickInterval, settings.GetTickInterval())
	}
	if settings.GetTickStep() != DefaultTickStep {
		t.Errorf("Expected default step %v, got %v", DefaultTickStep, settings.GetTickStep())
	}

	settings.SetTickIntervalMs(250)
	settings.SetTickPercent(5)
	if settings.GetTickInterval() != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", settings.GetTickInterval())
	}
	if settings.GetTickStep() != 0.05 {
		t.Errorf("Expected 0.05, got %v", settings.GetTickStep())
	}

	// Boundary values are clamped
	settings.SetTickIntervalMs(1)
	if settings.GetTickInterval() != MinTickIntervalMs*time.Millisecond {
		t.Error("Tick interval should be clamped to the minimum")
	}
	settings.SetTickPercent(500)
	if settings.GetTickStep() != 1 {
		t.Error("Tick step should be clamped to 100%")
	}
}

func TestNamingPolicy(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetNamingPolicy() != NamingOverwrite {
		t.Errorf("Expected default naming %s, got %s", NamingOverwrite, settings.GetNamingPolicy())
	}

	settings.SetNamingPolicy(NamingUnique)
	if settings.GetNamingPolicy() != NamingUnique {
		t.Errorf("Expected naming %s, got %s", NamingUnique, settings.GetNamingPolicy())
	}

	settings.SetNamingPolicy("rename")
	if settings.GetNamingPolicy() != NamingUnique {
		t.Error("Unknown naming policy should be ignored")
	}

	if len(settings.GetNamingPolicyOptions()) != 2 {
		t.Errorf("Expected 2 naming options, got %d", len(settings.GetNamingPolicyOptions()))
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "ru", "pt"} {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option %s to exist", lang)
		}
	}
}

func TestSettingsRuntime(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.SetOutputDirectory("/out")
	settings.SetFFmpegPath("ffmpeg7")
	settings.SetNamingPolicy(NamingUnique)

	rt := settings.Runtime()
	if rt.OutputDir != "/out" || rt.FFmpegPath != "ffmpeg7" || rt.Naming != NamingUnique {
		t.Errorf("Unexpected runtime snapshot: %+v", rt)
	}
	if rt.TickInterval != DefaultTickInterval || rt.TickStep != DefaultTickStep {
		t.Errorf("Unexpected tick settings: %+v", rt)
	}
}
