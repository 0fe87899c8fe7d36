package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyInputLabel          = "input_label"
	KeyInputPlaceholder    = "input_placeholder"
	KeyBrowse              = "browse"
	KeyCompressVideo       = "compress_video"
	KeyConvertToAudio      = "convert_to_audio"
	KeyDownloadVideo       = "download_video"
	KeyExecute             = "execute"
	KeyCancel              = "cancel"
	KeyClose               = "close"
	KeySettings            = "settings"
	KeyFile                = "file"
	KeyOutputDirectory     = "output_directory"
	KeyFFmpegPath          = "ffmpeg_path"
	KeyDownloaderPath      = "downloader_path"
	KeyOutputNaming        = "output_naming"
	KeyNamingOverwrite     = "naming_overwrite"
	KeyNamingUnique        = "naming_unique"
	KeyLanguage            = "language"
	KeyProgressTick        = "progress_tick"
	KeySave                = "save"
	KeySettingsSaved       = "settings_saved"
	KeyWarning             = "warning"
	KeyPleaseEnterInput    = "please_enter_input"
	KeyNoOperationSelected = "no_operation_selected"
	KeyInvalidInput        = "invalid_input"
	KeyAlreadyRunning      = "already_running"
	KeyOperationSucceeded  = "operation_succeeded"
	KeyOperationFailed     = "operation_failed"
	KeyOperationCancelled  = "operation_cancelled"
	KeyToolNotFound        = "tool_not_found"
	KeyExitCode            = "exit_code"
	KeyOpenFolder          = "open_folder"
	KeyOK                  = "ok"
	KeyStatusIdle          = "status_idle"
	KeyStatusRunning       = "status_running"
	KeyStatusCancelling    = "status_cancelling"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetLanguage returns the active language code
func (l *Localization) GetLanguage() string {
	return l.currentLanguage
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Video Tool",
		KeyInputLabel:          "File Path or Video URL:",
		KeyInputPlaceholder:    "/path/to/video.mov or https://...",
		KeyBrowse:              "Browse",
		KeyCompressVideo:       "Compress Video",
		KeyConvertToAudio:      "Convert to Audio",
		KeyDownloadVideo:       "Download Video",
		KeyExecute:             "Execute",
		KeyCancel:              "Cancel",
		KeyClose:               "Close",
		KeySettings:            "Settings",
		KeyFile:                "File",
		KeyOutputDirectory:     "Output Directory",
		KeyFFmpegPath:          "ffmpeg Executable",
		KeyDownloaderPath:      "Downloader Executable",
		KeyOutputNaming:        "Existing Output Files",
		KeyNamingOverwrite:     "Overwrite",
		KeyNamingUnique:        "Keep both (output-1, output-2, ...)",
		KeyLanguage:            "Language",
		KeyProgressTick:        "Progress Tick (ms / %)",
		KeySave:                "Save",
		KeySettingsSaved:       "Settings saved. Directory and tool changes apply after restart.",
		KeyWarning:             "Warning",
		KeyPleaseEnterInput:    "Please provide a valid input file or URL.",
		KeyNoOperationSelected: "No operation selected.",
		KeyInvalidInput:        "The input must not start with '-'.",
		KeyAlreadyRunning:      "Another operation is still running.",
		KeyOperationSucceeded:  "Operation completed successfully.",
		KeyOperationFailed:     "Operation failed.",
		KeyOperationCancelled:  "Operation cancelled.",
		KeyToolNotFound:        "The external tool could not be started",
		KeyExitCode:            "Exit code",
		KeyOpenFolder:          "Open Folder",
		KeyOK:                  "OK",
		KeyStatusIdle:          "Ready",
		KeyStatusRunning:       "Running",
		KeyStatusCancelling:    "Cancelling...",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Video Tool",
		KeyInputLabel:          "Путь к файлу или URL видео:",
		KeyInputPlaceholder:    "/путь/к/видео.mov или https://...",
		KeyBrowse:              "Обзор",
		KeyCompressVideo:       "Сжать видео",
		KeyConvertToAudio:      "Извлечь аудио",
		KeyDownloadVideo:       "Скачать видео",
		KeyExecute:             "Выполнить",
		KeyCancel:              "Отмена",
		KeyClose:               "Закрыть",
		KeySettings:            "Настройки",
		KeyFile:                "Файл",
		KeyOutputDirectory:     "Папка вывода",
		KeyFFmpegPath:          "Исполняемый файл ffmpeg",
		KeyDownloaderPath:      "Исполняемый файл загрузчика",
		KeyOutputNaming:        "Существующие файлы",
		KeyNamingOverwrite:     "Перезаписывать",
		KeyNamingUnique:        "Сохранять оба (output-1, output-2, ...)",
		KeyLanguage:            "Язык",
		KeyProgressTick:        "Шаг прогресса (мс / %)",
		KeySave:                "Сохранить",
		KeySettingsSaved:       "Настройки сохранены. Папка и инструменты применятся после перезапуска.",
		KeyWarning:             "Внимание",
		KeyPleaseEnterInput:    "Укажите файл или URL.",
		KeyNoOperationSelected: "Операция не выбрана.",
		KeyInvalidInput:        "Ввод не должен начинаться с '-'.",
		KeyAlreadyRunning:      "Другая операция ещё выполняется.",
		KeyOperationSucceeded:  "Операция успешно завершена.",
		KeyOperationFailed:     "Операция завершилась с ошибкой.",
		KeyOperationCancelled:  "Операция отменена.",
		KeyToolNotFound:        "Не удалось запустить внешний инструмент",
		KeyExitCode:            "Код выхода",
		KeyOpenFolder:          "Открыть папку",
		KeyOK:                  "OK",
		KeyStatusIdle:          "Готово",
		KeyStatusRunning:       "Выполняется",
		KeyStatusCancelling:    "Отмена...",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Video Tool",
		KeyInputLabel:          "Caminho do arquivo ou URL do vídeo:",
		KeyInputPlaceholder:    "/caminho/para/video.mov ou https://...",
		KeyBrowse:              "Navegar",
		KeyCompressVideo:       "Comprimir vídeo",
		KeyConvertToAudio:      "Converter para áudio",
		KeyDownloadVideo:       "Baixar vídeo",
		KeyExecute:             "Executar",
		KeyCancel:              "Cancelar",
		KeyClose:               "Fechar",
		KeySettings:            "Configurações",
		KeyFile:                "Arquivo",
		KeyOutputDirectory:     "Diretório de saída",
		KeyFFmpegPath:          "Executável do ffmpeg",
		KeyDownloaderPath:      "Executável do downloader",
		KeyOutputNaming:        "Arquivos existentes",
		KeyNamingOverwrite:     "Sobrescrever",
		KeyNamingUnique:        "Manter ambos (output-1, output-2, ...)",
		KeyLanguage:            "Idioma",
		KeyProgressTick:        "Passo do progresso (ms / %)",
		KeySave:                "Salvar",
		KeySettingsSaved:       "Configurações salvas. Diretório e ferramentas valem após reiniciar.",
		KeyWarning:             "Aviso",
		KeyPleaseEnterInput:    "Informe um arquivo ou URL válido.",
		KeyNoOperationSelected: "Nenhuma operação selecionada.",
		KeyInvalidInput:        "A entrada não pode começar com '-'.",
		KeyAlreadyRunning:      "Outra operação ainda está em execução.",
		KeyOperationSucceeded:  "Operação concluída com sucesso.",
		KeyOperationFailed:     "A operação falhou.",
		KeyOperationCancelled:  "Operação cancelada.",
		KeyToolNotFound:        "Não foi possível iniciar a ferramenta externa",
		KeyExitCode:            "Código de saída",
		KeyOpenFolder:          "Abrir pasta",
		KeyOK:                  "OK",
		KeyStatusIdle:          "Pronto",
		KeyStatusRunning:       "Executando",
		KeyStatusCancelling:    "Cancelando...",
	}
}
