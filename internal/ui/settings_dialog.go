package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/aramlens/aram-builds/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	championEntry  *widget.Entry
	iconSizeEntry  *widget.Entry
	languageSelect *widget.Select
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

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Default champion pre-filled in the search field
	sd.championEntry = widget.NewEntry()
	sd.championEntry.SetPlaceHolder(config.DefaultChampion)

	// Item icon display size
	sd.iconSizeEntry = widget.NewEntry()
	sd.iconSizeEntry.SetPlaceHolder(strconv.Itoa(config.DefaultIconSize))

	// Language selection
	languageOptions := []string{}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDefaultChampion)),
		sd.championEntry,

		widget.NewLabel(sd.localization.GetText(KeyIconSize)),
		sd.iconSizeEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(400, 300))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.championEntry.SetText(sd.settings.GetDefaultChampion())
	sd.iconSizeEntry.SetText(strconv.Itoa(sd.settings.GetIconSize()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.championEntry.Text != "" {
		sd.settings.SetDefaultChampion(sd.championEntry.Text)
	}

	if size, err := strconv.Atoi(sd.iconSizeEntry.Text); err == nil {
		sd.settings.SetIconSize(size)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
