package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "video-tool.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingOrEmptyReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/u")

	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.yaml"), writeConfig(t, "  \n")} {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultFile(), cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
output_dir: /srv/media
ffmpeg_path: /opt/ffmpeg/bin/ffmpeg
downloader_path: yt-dlp
progress_tick_interval_ms: 250
progress_tick_percent: 2
output_naming: unique
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	rt := cfg.Runtime()
	assert.Equal(t, "/srv/media", rt.OutputDir)
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", rt.FFmpegPath)
	assert.Equal(t, "yt-dlp", rt.DownloaderPath)
	assert.Equal(t, 250*time.Millisecond, rt.TickInterval)
	assert.InDelta(t, 0.02, rt.TickStep, 1e-9)
	assert.Equal(t, NamingUnique, rt.Naming)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/u")
	path := writeConfig(t, "downloader_path: yt-dlp\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/home/u", cfg.OutputDir)
	assert.Equal(t, "ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "yt-dlp", cfg.DownloaderPath)
	assert.Equal(t, NamingOverwrite, cfg.Naming)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":     "output_dir: [unterminated",
		"bad interval": "progress_tick_interval_ms: 1",
		"bad percent":  "progress_tick_percent: 0",
		"bad naming":   "output_naming: rename",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestDefaultRuntime(t *testing.T) {
	t.Setenv("HOME", "/home/u")
	rt := DefaultRuntime()

	assert.Equal(t, "/home/u", rt.OutputDir)
	assert.Equal(t, DefaultTickInterval, rt.TickInterval)
	assert.Equal(t, NamingOverwrite, rt.Naming)
	assert.Equal(t, DefaultFile().Runtime(), rt)
}

func TestRuntime_Builder(t *testing.T) {
	rt := Runtime{FFmpegPath: "/opt/ffmpeg", DownloaderPath: "/opt/yt-dlp"}
	b := rt.Builder()

	assert.Equal(t, "/opt/ffmpeg", b.FFmpeg)
	assert.Equal(t, "/opt/yt-dlp", b.Downloader)
}
