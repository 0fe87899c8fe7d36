package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Window sizing
const (
	WindowWidth  float32 = 500
	WindowHeight float32 = 300

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 420
)

// CloseWaitTimeout bounds how long closing waits for a cancelled child to exit
const CloseWaitTimeout = 3 * time.Second

// Result dialog details
const (
	// StderrTailLines is how many trailing stderr lines a failure dialog shows
	StderrTailLines = 6
)
