package ui

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"
	"gitlab.com/tozd/go/errors"

	"github.com/ytget/video-tool/internal/config"
	"github.com/ytget/video-tool/internal/model"
	"github.com/ytget/video-tool/internal/operation"
	"github.com/ytget/video-tool/internal/platform"
	"github.com/ytget/video-tool/internal/runner"
)

// Executor is the operation boundary the window drives
type Executor interface {
	SetObserver(observer runner.Observer)
	Execute(mode model.Mode, input string) (*runner.Handle, error)
	Cancel() error
	Reset() error
	Current() *runner.Handle
	OutputDir() string
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	executor     Executor
	settings     *config.Settings
	localization *Localization

	inputEntry  *widget.Entry
	browseBtn   *widget.Button
	modeGroup   *widget.RadioGroup
	progressBar *widget.ProgressBar
	statusLabel *widget.Label
	executeBtn  *widget.Button
	cancelBtn   *widget.Button
	closeBtn    *widget.Button

	// openDirectory reveals the output folder; replaced in tests
	openDirectory func(dir string) error

	// quit ends the application; replaced in tests
	quit      func()
	closeWait time.Duration
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, executor Executor, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:        window,
		app:           app,
		executor:      executor,
		settings:      settings,
		localization:  localization,
		openDirectory: platform.OpenDirectory,
		quit:          app.Quit,
		closeWait:     CloseWaitTimeout,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	executor.SetObserver(ui)

	ui.setupUI()
	window.SetCloseIntercept(ui.onClose)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	t := ui.localization.GetText

	ui.createMenu()

	ui.inputEntry = widget.NewEntry()
	ui.inputEntry.SetPlaceHolder(t(KeyInputPlaceholder))
	ui.inputEntry.OnSubmitted = func(string) {
		ui.onExecuteClick()
	}

	ui.browseBtn = widget.NewButton(t(KeyBrowse), ui.onBrowseClick)
	inputRow := container.NewBorder(nil, nil, nil, ui.browseBtn, ui.inputEntry)

	ui.modeGroup = widget.NewRadioGroup(ui.modeLabels(), nil)
	ui.modeGroup.Required = true
	ui.modeGroup.SetSelected(ui.modeLabel(model.ModeCompress))

	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(t(KeyStatusIdle))

	ui.executeBtn = widget.NewButton(t(KeyExecute), ui.onExecuteClick)
	ui.executeBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButton(t(KeyCancel), ui.onCancelClick)
	ui.cancelBtn.Disable()
	ui.closeBtn = widget.NewButton(t(KeyClose), ui.onClose)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	buttons := container.NewHBox(settingsBtn, layout.NewSpacer(), ui.executeBtn, ui.cancelBtn, ui.closeBtn)

	content := container.NewVBox(
		widget.NewLabel(t(KeyInputLabel)),
		inputRow,
		ui.modeGroup,
		ui.progressBar,
		ui.statusLabel,
		buttons,
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	log.Debug().Msg("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem)
	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

// modeLabels returns the radio options in display order
func (ui *RootUI) modeLabels() []string {
	modes := model.Modes()
	labels := make([]string, 0, len(modes))
	for _, m := range modes {
		labels = append(labels, ui.modeLabel(m))
	}
	return labels
}

// modeLabel returns the localized label of a mode
func (ui *RootUI) modeLabel(m model.Mode) string {
	switch m {
	case model.ModeCompress:
		return ui.localization.GetText(KeyCompressVideo)
	case model.ModeAudio:
		return ui.localization.GetText(KeyConvertToAudio)
	case model.ModeDownload:
		return ui.localization.GetText(KeyDownloadVideo)
	default:
		return string(m)
	}
}

// selectedMode maps the radio selection back to a mode. An empty mode is
// returned when nothing is selected.
func (ui *RootUI) selectedMode() model.Mode {
	for _, m := range model.Modes() {
		if ui.modeLabel(m) == ui.modeGroup.Selected {
			return m
		}
	}
	return ""
}

// onBrowseClick opens a file chooser and fills the input entry
func (ui *RootUI) onBrowseClick() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		ui.inputEntry.SetText(reader.URI().Path())
	}, ui.window)
}

// onExecuteClick validates the request and hands it to the executor
func (ui *RootUI) onExecuteClick() {
	input := strings.TrimSpace(ui.inputEntry.Text)
	mode := ui.selectedMode()

	if err := operation.Validate(mode, input); err != nil {
		var key string
		switch {
		case input == "":
			key = KeyPleaseEnterInput
		case !mode.Valid():
			key = KeyNoOperationSelected
		default:
			key = KeyInvalidInput
		}
		log.Debug().Err(err).Msg("execute rejected")
		dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(key), ui.window)
		return
	}

	ui.progressBar.SetValue(0)

	if _, err := ui.executor.Execute(mode, input); err != nil {
		if errors.Is(err, runner.ErrAlreadyRunning) {
			dialog.ShowInformation(ui.localization.GetText(KeyWarning), ui.localization.GetText(KeyAlreadyRunning), ui.window)
			return
		}
		log.Error().Err(err).Str("mode", mode.String()).Msg("execute failed")
		dialog.ShowError(err, ui.window)
	}
}

// onCancelClick requests cancellation of the running operation
func (ui *RootUI) onCancelClick() {
	if err := ui.executor.Cancel(); err != nil {
		log.Debug().Err(err).Msg("cancel ignored")
		return
	}
	ui.cancelBtn.Disable()
	ui.statusLabel.SetText(ui.localization.GetText(KeyStatusCancelling))
}

// onClose cancels any running operation, waits a bounded time for the child
// to exit and quits
func (ui *RootUI) onClose() {
	h := ui.executor.Current()
	if err := ui.executor.Cancel(); err != nil || h == nil {
		ui.quit()
		return
	}

	log.Info().Str("operation_id", h.ID()).Msg("cancelled running operation on close")
	ui.closeBtn.Disable()
	ui.cancelBtn.Disable()
	ui.statusLabel.SetText(ui.localization.GetText(KeyStatusCancelling))

	go func() {
		select {
		case <-h.Done():
		case <-time.After(ui.closeWait):
			log.Warn().Str("operation_id", h.ID()).Dur("timeout", ui.closeWait).Msg("child still running at exit")
		}
		fyne.Do(ui.quit)
	}()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.localization, ui.window)
	sd.SetOnSaved(func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
	})
	sd.Show()
}

// OnStarted implements runner.Observer
func (ui *RootUI) OnStarted(info runner.OperationInfo) {
	fyne.Do(func() {
		ui.executeBtn.Disable()
		ui.browseBtn.Disable()
		ui.cancelBtn.Enable()
		ui.progressBar.SetValue(0)
		ui.statusLabel.SetText(fmt.Sprintf("%s: %s", ui.localization.GetText(KeyStatusRunning), ui.modeLabel(info.Mode)))
	})
}

// OnProgress implements runner.Observer
func (ui *RootUI) OnProgress(fraction float64) {
	fyne.Do(func() {
		ui.progressBar.SetValue(fraction)
	})
}

// OnCompleted implements runner.Observer
func (ui *RootUI) OnCompleted(result model.OperationResult) {
	fyne.Do(func() {
		ui.executeBtn.Enable()
		ui.browseBtn.Enable()
		ui.cancelBtn.Disable()
		ui.statusLabel.SetText(ui.localization.GetText(KeyStatusIdle))

		if err := ui.executor.Reset(); err != nil {
			log.Debug().Err(err).Msg("reset skipped")
		}

		ui.showResult(result)
	})
}

// showResult renders the outcome dialog for a finished operation
func (ui *RootUI) showResult(result model.OperationResult) {
	t := ui.localization.GetText

	switch result.Kind {
	case model.ResultSucceeded:
		ui.progressBar.SetValue(1)
		d := dialog.NewConfirm(t(KeyAppTitle), t(KeyOperationSucceeded), func(open bool) {
			if !open {
				return
			}
			if err := ui.openDirectory(ui.executor.OutputDir()); err != nil {
				log.Error().Err(err).Str("dir", ui.executor.OutputDir()).Msg("open output folder")
				dialog.ShowError(err, ui.window)
			}
		}, ui.window)
		d.SetConfirmText(t(KeyOpenFolder))
		d.SetDismissText(t(KeyOK))
		d.Show()
	case model.ResultCancelled:
		ui.progressBar.SetValue(0)
		dialog.ShowInformation(t(KeyAppTitle), t(KeyOperationCancelled), ui.window)
	default:
		dialog.ShowError(errors.New(ui.failureMessage(result)), ui.window)
	}
}

// failureMessage builds the failure dialog text with the stderr tail
func (ui *RootUI) failureMessage(result model.OperationResult) string {
	t := ui.localization.GetText

	var b strings.Builder
	b.WriteString(t(KeyOperationFailed))
	if result.Kind == model.ResultSpawnFailed {
		b.WriteString("\n" + t(KeyToolNotFound))
		if result.Error != "" {
			b.WriteString(": " + result.Error)
		}
	} else {
		fmt.Fprintf(&b, "\n%s: %d", t(KeyExitCode), result.ExitCode)
	}

	if tail := lastLines(result.Stderr, StderrTailLines); tail != "" {
		b.WriteString("\n\n" + tail)
	}
	return b.String()
}

// lastLines returns at most n trailing non-empty lines of s
func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\r\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
