package command

import (
	"path/filepath"

	"github.com/ytget/video-tool/internal/model"
)

// Tool defaults
const (
	DefaultFFmpeg     = "ffmpeg"
	DefaultDownloader = "youtube-dl"
)

// FFmpeg settings
const (
	OverwriteFlag  = "-y"
	InputFlag      = "-i"
	VideoCodecFlag = "-vcodec"
	VideoCodec     = "libx265"
	CRFFlag        = "-crf"
	VideoCRF       = "28"
	NoVideoFlag    = "-vn"
)

// Downloader settings
const (
	OutputFlag     = "-o"
	OutputTemplate = "%(title)s.%(ext)s"
)

// Output basenames
const (
	CompressedOutputName = "output.mp4"
	AudioOutputName      = "output.mp3"
)

// Builder turns an operation request into a CommandSpec
type Builder struct {
	FFmpeg     string
	Downloader string
}

// NewBuilder creates a builder; empty executables fall back to the defaults
func NewBuilder(ffmpeg, downloader string) Builder {
	if ffmpeg == "" {
		ffmpeg = DefaultFFmpeg
	}
	if downloader == "" {
		downloader = DefaultDownloader
	}
	return Builder{FFmpeg: ffmpeg, Downloader: downloader}
}

// DefaultOutputName returns the fixed output basename for a mode
func DefaultOutputName(mode model.Mode) string {
	switch mode {
	case model.ModeCompress:
		return CompressedOutputName
	case model.ModeAudio:
		return AudioOutputName
	default:
		return OutputTemplate
	}
}

// Build returns the command for mode using the fixed output names
func (b Builder) Build(mode model.Mode, input, outputDir string) model.CommandSpec {
	return b.BuildNamed(mode, input, outputDir, "")
}

// BuildNamed is Build with an overridable output basename for compress and
// audio. Downloads always use the downloader's title template.
func (b Builder) BuildNamed(mode model.Mode, input, outputDir, basename string) model.CommandSpec {
	if basename == "" {
		basename = DefaultOutputName(mode)
	}

	switch mode {
	case model.ModeCompress:
		return model.CommandSpec{
			Executable: b.ffmpeg(),
			Args: []string{
				OverwriteFlag,
				InputFlag, input,
				VideoCodecFlag, VideoCodec,
				CRFFlag, VideoCRF,
				filepath.Join(outputDir, basename),
			},
		}
	case model.ModeAudio:
		return model.CommandSpec{
			Executable: b.ffmpeg(),
			Args: []string{
				OverwriteFlag,
				InputFlag, input,
				NoVideoFlag,
				filepath.Join(outputDir, basename),
			},
		}
	default:
		// Download is the only remaining mode; mode selection is validated by the caller.
		return model.CommandSpec{
			Executable: b.downloader(),
			Args: []string{
				OutputFlag, filepath.Join(outputDir, OutputTemplate),
				input,
			},
		}
	}
}

func (b Builder) ffmpeg() string {
	if b.FFmpeg == "" {
		return DefaultFFmpeg
	}
	return b.FFmpeg
}

func (b Builder) downloader() string {
	if b.Downloader == "" {
		return DefaultDownloader
	}
	return b.Downloader
}
