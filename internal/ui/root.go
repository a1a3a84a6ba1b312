package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/aramlens/aram-builds/internal/config"
	"github.com/aramlens/aram-builds/internal/model"
	"github.com/aramlens/aram-builds/internal/scrape"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	nameLabel    *widget.Label
	champEntry   *widget.Entry
	searchBtn    *widget.Button
	statusLabel  *widget.Label
	tabs         *container.AppTabs
	tabBoxes     map[model.Category]*fyne.Container
	fetchSvc     scrape.Fetcher
	settings     *config.Settings
	localization *Localization
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, fetchSvc scrape.Fetcher) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		tabBoxes:     make(map[model.Category]*fyne.Container),
		fetchSvc:     fetchSvc,
		settings:     settings,
		localization: localization,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for fetch updates
	ui.fetchSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create champion entry
	ui.nameLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeyChampionName), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	ui.champEntry = widget.NewEntry()
	ui.champEntry.SetText(ui.settings.GetDefaultChampion())
	// Trigger search when user presses Enter in the champion field
	ui.champEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}

	// Create search button
	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), ui.onSearchClick)

	// Create status label
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyStatusReady))

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create top control bar
	topPanel := container.NewBorder(
		nil, nil,
		container.NewHBox(settingsBtn, ui.nameLabel),
		container.NewHBox(ui.searchBtn, ui.statusLabel),
		ui.champEntry,
	)

	// Create one scrollable tab per category
	ui.tabs = container.NewAppTabs()
	for _, category := range model.Categories() {
		box := container.NewVBox()
		ui.tabBoxes[category] = box
		ui.tabs.Append(container.NewTabItem(category.String(), container.NewVScroll(box)))
	}

	content := container.NewBorder(
		topPanel, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		ui.tabs,  // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.nameLabel.SetText(ui.localization.GetText(KeyChampionName))
	ui.searchBtn.SetText(ui.localization.GetText(KeySearch))
	ui.statusLabel.SetText(ui.localization.GetText(KeyStatusReady))
}

// onShowSettings displays the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window).Show()
}

// onSearchClick handles the search button click
func (ui *RootUI) onSearchClick() {
	name := strings.TrimSpace(ui.champEntry.Text)
	if name == "" {
		ui.statusLabel.SetText(ui.localization.GetText(KeyPleaseEnterName))
		return
	}

	task, err := ui.fetchSvc.Fetch(name)
	if err != nil {
		log.Printf("Could not start fetch for %q: %v", name, err)
		if strings.Contains(err.Error(), "in progress") {
			ui.statusLabel.SetText(ui.localization.GetText(KeyFetchInProgress))
		} else {
			ui.statusLabel.SetText(ui.localization.GetText(KeyPleaseEnterName))
		}
		return
	}

	log.Printf("Fetch started: id=%s slug=%s url=%s", task.ID, task.Slug, task.URL)

	// One fetch at a time: the button stays disabled until the task
	// finishes and re-enables it from the update callback.
	ui.searchBtn.Disable()
	ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyStatusSearching), task.Slug))
	ui.clearTabs()
}

// clearTabs empties every category tab before a new search
func (ui *RootUI) clearTabs() {
	for _, box := range ui.tabBoxes {
		box.RemoveAll()
		box.Refresh()
	}
}

// onTaskUpdate handles fetch task status transitions. It is invoked
// synchronously on the pipeline goroutine; all widget mutation is
// rescheduled onto the UI thread via fyne.Do with the fields snapshotted
// here, because the goroutine owns the task until it reaches a terminal
// status.
func (ui *RootUI) onTaskUpdate(task *model.FetchTask) {
	status := task.Status
	results := task.Results
	lastError := task.LastError

	log.Printf("Task update: id=%s status=%s", task.ID, status)

	if !status.IsFinished() {
		return
	}

	fyne.Do(func() {
		defer ui.searchBtn.Enable()

		switch status {
		case model.FetchStatusCompleted:
			ui.renderResults(results)
			ui.statusLabel.SetText(ui.localization.GetText(KeyStatusSuccess))
		case model.FetchStatusNotFound:
			ui.statusLabel.SetText(ui.localization.GetText(KeyStatusNotFound))
			dialog.ShowInformation(
				ui.localization.GetText(KeyNotFoundTitle),
				ui.localization.GetText(KeyMsgNotFound),
				ui.window,
			)
		case model.FetchStatusError:
			log.Printf("Fetch failed: %s", lastError)
			ui.statusLabel.SetText(ui.localization.GetText(KeyStatusConnError))
			dialog.ShowError(errors.New(ui.localization.GetText(KeyMsgConnError)), ui.window)
		}
	})
}
