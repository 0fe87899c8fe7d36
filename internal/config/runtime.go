package config

import (
	"time"

	"github.com/ytget/video-tool/internal/command"
	"github.com/ytget/video-tool/internal/platform"
)

// NamingPolicy decides what happens when the fixed output file already exists
type NamingPolicy string

const (
	// NamingOverwrite silently replaces output.mp4 / output.mp3
	NamingOverwrite NamingPolicy = "overwrite"

	// NamingUnique picks the next free output-N name
	NamingUnique NamingPolicy = "unique"
)

// Valid reports whether p is a known policy
func (p NamingPolicy) Valid() bool {
	return p == NamingOverwrite || p == NamingUnique
}

// Default values shared by preferences and the config file
const (
	DefaultTickInterval = 100 * time.Millisecond
	DefaultTickStep     = 0.01
	DefaultNaming       = NamingOverwrite
	DefaultLanguage     = "system"
)

// Tick bounds
const (
	MinTickIntervalMs = 10
	MaxTickIntervalMs = 5000
	MinTickPercent    = 1
	MaxTickPercent    = 100
)

// Runtime is the resolved configuration consumed by the operation layer
type Runtime struct {
	OutputDir      string
	FFmpegPath     string
	DownloaderPath string
	TickInterval   time.Duration
	TickStep       float64
	Naming         NamingPolicy
}

// DefaultRuntime returns the configuration used when nothing is set
func DefaultRuntime() Runtime {
	return Runtime{
		OutputDir:      platform.HomeDir(),
		FFmpegPath:     command.DefaultFFmpeg,
		DownloaderPath: command.DefaultDownloader,
		TickInterval:   DefaultTickInterval,
		TickStep:       DefaultTickStep,
		Naming:         DefaultNaming,
	}
}

// Builder returns a command builder for the configured tools, resolving bare
// names against bundled bin/ directories and PATH.
func (r Runtime) Builder() command.Builder {
	return command.NewBuilder(platform.ResolveTool(r.FFmpegPath), platform.ResolveTool(r.DownloaderPath))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
