// Package ui contains the Fyne-based desktop user interface. It collects the
// input locator and operation mode, forwards execute requests to the
// operation service and renders runner events as a progress bar and result
// dialogs. All UI strings are localized via Localization.
package ui
