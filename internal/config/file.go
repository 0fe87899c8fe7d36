package config

import (
	"os"
	"strings"
	"time"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/ytget/video-tool/internal/command"
	"github.com/ytget/video-tool/internal/platform"
)

// FileConfig is the YAML configuration used by the command line tool.
type FileConfig struct {
	OutputDir      string       `yaml:"output_dir"`
	FFmpegPath     string       `yaml:"ffmpeg_path"`
	DownloaderPath string       `yaml:"downloader_path"`
	TickIntervalMs int          `yaml:"progress_tick_interval_ms"`
	TickPercent    int          `yaml:"progress_tick_percent"`
	Naming         NamingPolicy `yaml:"output_naming"`
}

// DefaultFile returns the defaults applied under a config file
func DefaultFile() FileConfig {
	rt := DefaultRuntime()
	return FileConfig{
		OutputDir:      rt.OutputDir,
		FFmpegPath:     rt.FFmpegPath,
		DownloaderPath: rt.DownloaderPath,
		TickIntervalMs: int(rt.TickInterval / time.Millisecond),
		TickPercent:    int(rt.TickStep*100 + 0.5),
		Naming:         rt.Naming,
	}
}

// Load reads YAML config from path over the defaults. An empty path, a
// missing file or an empty file yields the defaults with no error.
func Load(path string) (FileConfig, error) {
	cfg := DefaultFile()
	if path == "" {
		return cfg, nil
	}

	fileData, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Errorf("read config: %w", err)
	}
	if len(strings.TrimSpace(string(fileData))) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(fileData, &cfg); err != nil {
		return cfg, errors.Errorf("parse yaml: %w", err)
	}

	// normalization
	if cfg.OutputDir == "" {
		cfg.OutputDir = platform.HomeDir()
	}
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = command.DefaultFFmpeg
	}
	if cfg.DownloaderPath == "" {
		cfg.DownloaderPath = command.DefaultDownloader
	}
	if cfg.Naming == "" {
		cfg.Naming = DefaultNaming
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c FileConfig) Validate() error {
	if c.TickIntervalMs < MinTickIntervalMs || c.TickIntervalMs > MaxTickIntervalMs {
		return errors.Errorf("invalid progress_tick_interval_ms: %d (must be %d-%d)", c.TickIntervalMs, MinTickIntervalMs, MaxTickIntervalMs)
	}
	if c.TickPercent < MinTickPercent || c.TickPercent > MaxTickPercent {
		return errors.Errorf("invalid progress_tick_percent: %d (must be %d-%d)", c.TickPercent, MinTickPercent, MaxTickPercent)
	}
	if !c.Naming.Valid() {
		return errors.Errorf("invalid output_naming: %q (must be %q or %q)", c.Naming, NamingOverwrite, NamingUnique)
	}
	return nil
}

// Runtime converts the file config for the operation layer
func (c FileConfig) Runtime() Runtime {
	return Runtime{
		OutputDir:      c.OutputDir,
		FFmpegPath:     c.FFmpegPath,
		DownloaderPath: c.DownloaderPath,
		TickInterval:   time.Duration(c.TickIntervalMs) * time.Millisecond,
		TickStep:       float64(c.TickPercent) / 100,
		Naming:         c.Naming,
	}
}
