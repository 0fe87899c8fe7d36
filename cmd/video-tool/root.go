package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/ytget/video-tool/internal/config"
	"github.com/ytget/video-tool/internal/logging"
	"github.com/ytget/video-tool/internal/model"
	"github.com/ytget/video-tool/internal/operation"
	"github.com/ytget/video-tool/internal/platform"
)

// rootOptions holds the persistent flags
type rootOptions struct {
	configFile string
	outputDir  string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "video-tool",
		Short: "Compress, convert or download videos with ffmpeg and youtube-dl",
		Long: `video-tool runs one external media command at a time:

  compress   re-encode a local video to H.265/HEVC (output.mp4)
  audio      extract the audio track as MP3 (output.mp3)
  download   fetch a remote video with youtube-dl

Outputs go to the configured output directory (default: home directory).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(opts.debug, cmd.ErrOrStderr())
		},
	}

	addRootFlags(cmd, opts)

	for _, mode := range model.Modes() {
		cmd.AddCommand(newModeCmd(opts, mode))
	}
	cmd.AddCommand(newRunCmd(opts))

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, opts *rootOptions) {
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file path (YAML)")
	cmd.PersistentFlags().StringVarP(&opts.outputDir, "output-dir", "o", "", "override the output directory")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
}

// runtime resolves the configuration from the config file and flags
func (o *rootOptions) runtime() (config.Runtime, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return config.Runtime{}, errors.Errorf("loading config: %w", err)
	}
	if o.outputDir != "" {
		cfg.OutputDir = o.outputDir
	}
	return cfg.Runtime(), nil
}

var modeShort = map[model.Mode]string{
	model.ModeCompress: "Compress a local video to output.mp4",
	model.ModeAudio:    "Extract the audio of a local video to output.mp3",
	model.ModeDownload: "Download a remote video by URL",
}

// newModeCmd creates the subcommand running mode on its single argument
func newModeCmd(opts *rootOptions, mode model.Mode) *cobra.Command {
	return &cobra.Command{
		Use:   mode.String() + " <input>",
		Short: modeShort[mode],
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.execute(cmd, mode, args[0])
		},
	}
}

// newRunCmd creates the generic form taking the mode as an argument
func newRunCmd(opts *rootOptions) *cobra.Command {
	validModes := make([]string, 0, len(model.Modes()))
	for _, m := range model.Modes() {
		validModes = append(validModes, m.String())
	}

	return &cobra.Command{
		Use:       "run <mode> <input>",
		Short:     "Run an operation given by name (compress, audio, download)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: validModes,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := model.ParseMode(args[0])
			if err != nil {
				return err
			}
			return opts.execute(cmd, mode, args[1])
		},
	}
}

// execute validates input, resolves configuration and runs mode on it
func (o *rootOptions) execute(cmd *cobra.Command, mode model.Mode, input string) error {
	if err := operation.Validate(mode, input); err != nil {
		return err
	}

	rt, err := o.runtime()
	if err != nil {
		return err
	}

	if err := platform.CreateDirectoryIfNotExists(rt.OutputDir); err != nil {
		return errors.Errorf("creating output directory: %w", err)
	}

	log.Debug().
		Str("output_dir", rt.OutputDir).
		Str("ffmpeg", rt.FFmpegPath).
		Str("downloader", rt.DownloaderPath).
		Msg("configuration resolved")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := operation.NewFromRuntime(rt)
	return runOperation(ctx, svc, mode, input, cmd.OutOrStdout())
}
