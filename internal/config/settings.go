package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/video-tool/internal/command"
	"github.com/ytget/video-tool/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir      = "output_directory"
	KeyFFmpegPath     = "ffmpeg_path"
	KeyDownloaderPath = "downloader_path"
	KeyTickIntervalMs = "progress_tick_interval_ms"
	KeyTickPercent    = "progress_tick_percent"
	KeyNaming         = "output_naming"
	KeyLanguage       = "app_language"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured output directory, defaulting to
// the user's home directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		dir = platform.HomeDir()
		s.SetOutputDirectory(dir)
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetFFmpegPath returns the ffmpeg executable name or path
func (s *Settings) GetFFmpegPath() string {
	return s.app.Preferences().StringWithFallback(KeyFFmpegPath, command.DefaultFFmpeg)
}

// SetFFmpegPath sets the ffmpeg executable; empty restores the default
func (s *Settings) SetFFmpegPath(path string) {
	if path == "" {
		path = command.DefaultFFmpeg
	}
	s.app.Preferences().SetString(KeyFFmpegPath, path)
}

// GetDownloaderPath returns the downloader executable name or path
func (s *Settings) GetDownloaderPath() string {
	return s.app.Preferences().StringWithFallback(KeyDownloaderPath, command.DefaultDownloader)
}

// SetDownloaderPath sets the downloader executable; empty restores the default
func (s *Settings) SetDownloaderPath(path string) {
	if path == "" {
		path = command.DefaultDownloader
	}
	s.app.Preferences().SetString(KeyDownloaderPath, path)
}

// GetTickInterval returns the progress heartbeat cadence
func (s *Settings) GetTickInterval() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyTickIntervalMs, int(DefaultTickInterval/time.Millisecond))
	return time.Duration(clampInt(ms, MinTickIntervalMs, MaxTickIntervalMs)) * time.Millisecond
}

// SetTickIntervalMs sets the heartbeat cadence in milliseconds
func (s *Settings) SetTickIntervalMs(ms int) {
	s.app.Preferences().SetInt(KeyTickIntervalMs, clampInt(ms, MinTickIntervalMs, MaxTickIntervalMs))
}

// GetTickStep returns the heartbeat step as a fraction
func (s *Settings) GetTickStep() float64 {
	percent := s.app.Preferences().IntWithFallback(KeyTickPercent, int(DefaultTickStep*100))
	return float64(clampInt(percent, MinTickPercent, MaxTickPercent)) / 100
}

// SetTickPercent sets the heartbeat step in percent
func (s *Settings) SetTickPercent(percent int) {
	s.app.Preferences().SetInt(KeyTickPercent, clampInt(percent, MinTickPercent, MaxTickPercent))
}

// GetNamingPolicy returns how existing outputs are treated
func (s *Settings) GetNamingPolicy() NamingPolicy {
	p := NamingPolicy(s.app.Preferences().String(KeyNaming))
	if !p.Valid() {
		return DefaultNaming
	}
	return p
}

// SetNamingPolicy sets the naming policy; unknown values are ignored
func (s *Settings) SetNamingPolicy(p NamingPolicy) {
	if !p.Valid() {
		return
	}
	s.app.Preferences().SetString(KeyNaming, string(p))
}

// GetNamingPolicyOptions returns the available naming policies
func (s *Settings) GetNamingPolicyOptions() []NamingPolicy {
	return []NamingPolicy{NamingOverwrite, NamingUnique}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Runtime returns a snapshot of the settings for the operation layer
func (s *Settings) Runtime() Runtime {
	return Runtime{
		OutputDir:      s.GetOutputDirectory(),
		FFmpegPath:     s.GetFFmpegPath(),
		DownloaderPath: s.GetDownloaderPath(),
		TickInterval:   s.GetTickInterval(),
		TickStep:       s.GetTickStep(),
		Naming:         s.GetNamingPolicy(),
	}
}
