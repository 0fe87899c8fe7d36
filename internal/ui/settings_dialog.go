package ui

import (
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/ytget/video-tool/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	outputDirEntry      *widget.Entry
	ffmpegEntry         *widget.Entry
	downloaderEntry     *widget.Entry
	namingSelect        *widget.Select
	tickIntervalEntry   *widget.Entry
	tickPercentEntry    *widget.Entry
	languageSelect      *widget.Select
	namingLabelToPolicy map[string]config.NamingPolicy
	languageLabelToCode map[string]string

	// onSaved is invoked after the preferences were written
	onSaved func()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// SetOnSaved registers a callback run after a successful save
func (sd *SettingsDialog) SetOnSaved(fn func()) {
	sd.onSaved = fn
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.outputDirEntry = widget.NewEntry()
	sd.outputDirEntry.SetPlaceHolder(t(KeyOutputDirectory))
	browseDirBtn := widget.NewButton(IconFolder, sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	sd.ffmpegEntry = widget.NewEntry()
	sd.ffmpegEntry.SetPlaceHolder("ffmpeg")

	sd.downloaderEntry = widget.NewEntry()
	sd.downloaderEntry.SetPlaceHolder("youtube-dl")

	sd.namingLabelToPolicy = map[string]config.NamingPolicy{
		t(KeyNamingOverwrite): config.NamingOverwrite,
		t(KeyNamingUnique):    config.NamingUnique,
	}
	namingOptions := make([]string, 0, len(sd.namingLabelToPolicy))
	for _, p := range sd.settings.GetNamingPolicyOptions() {
		namingOptions = append(namingOptions, sd.namingLabel(p))
	}
	sd.namingSelect = widget.NewSelect(namingOptions, nil)

	sd.tickIntervalEntry = widget.NewEntry()
	sd.tickIntervalEntry.SetPlaceHolder(strconv.Itoa(config.MinTickIntervalMs) + "-" + strconv.Itoa(config.MaxTickIntervalMs))

	sd.tickPercentEntry = widget.NewEntry()
	sd.tickPercentEntry.SetPlaceHolder(strconv.Itoa(config.MinTickPercent) + "-" + strconv.Itoa(config.MaxTickPercent))

	// Language selection shows names, stores codes
	sd.languageLabelToCode = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageLabelToCode[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyOutputDirectory)),
		outputDirRow,

		widget.NewLabel(t(KeyFFmpegPath)),
		sd.ffmpegEntry,

		widget.NewLabel(t(KeyDownloaderPath)),
		sd.downloaderEntry,

		widget.NewLabel(t(KeyOutputNaming)),
		sd.namingSelect,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyProgressTick)),
		container.NewGridWithColumns(2, sd.tickIntervalEntry, sd.tickPercentEntry),

		widget.NewSeparator(),
		widget.NewLabel(t(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// namingLabel returns the localized label of a naming policy
func (sd *SettingsDialog) namingLabel(p config.NamingPolicy) string {
	for label, policy := range sd.namingLabelToPolicy {
		if policy == p {
			return label
		}
	}
	return string(p)
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.ffmpegEntry.SetText(sd.settings.GetFFmpegPath())
	sd.downloaderEntry.SetText(sd.settings.GetDownloaderPath())
	sd.namingSelect.SetSelected(sd.namingLabel(sd.settings.GetNamingPolicy()))
	sd.tickIntervalEntry.SetText(strconv.Itoa(int(sd.settings.GetTickInterval() / time.Millisecond)))
	sd.tickPercentEntry.SetText(strconv.Itoa(int(sd.settings.GetTickStep()*100 + 0.5)))

	lang := sd.settings.GetLanguage()
	if name, ok := sd.settings.GetLanguageOptions()[lang]; ok {
		sd.languageSelect.SetSelected(name)
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.outputDirEntry.Text; dir != "" {
		sd.settings.SetOutputDirectory(dir)
	}

	sd.settings.SetFFmpegPath(sd.ffmpegEntry.Text)
	sd.settings.SetDownloaderPath(sd.downloaderEntry.Text)

	if p, ok := sd.namingLabelToPolicy[sd.namingSelect.Selected]; ok {
		sd.settings.SetNamingPolicy(p)
	}

	if ms, err := strconv.Atoi(sd.tickIntervalEntry.Text); err == nil {
		sd.settings.SetTickIntervalMs(ms)
	}
	if percent, err := strconv.Atoi(sd.tickPercentEntry.Text); err == nil {
		sd.settings.SetTickPercent(percent)
	}

	if code, ok := sd.languageLabelToCode[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	log.Info().
		Str("output_dir", sd.settings.GetOutputDirectory()).
		Str("naming", string(sd.settings.GetNamingPolicy())).
		Msg("settings saved")

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
