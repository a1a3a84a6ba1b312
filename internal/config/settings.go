package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyDefaultChampion = "default_champion"
	KeyIconSize        = "icon_size"
)

// Default values
const (
	DefaultLanguage = "system"
	DefaultChampion = "Vel'Koz"
	DefaultIconSize = 40

	MinIconSize = 24
	MaxIconSize = 96
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDefaultChampion returns the champion pre-filled in the search field
func (s *Settings) GetDefaultChampion() string {
	champion := s.app.Preferences().String(KeyDefaultChampion)
	if champion == "" {
		s.SetDefaultChampion(DefaultChampion)
		return DefaultChampion
	}
	return champion
}

// SetDefaultChampion sets the champion pre-filled in the search field
func (s *Settings) SetDefaultChampion(champion string) {
	if champion == "" {
		champion = DefaultChampion
	}
	s.app.Preferences().SetString(KeyDefaultChampion, champion)
}

// GetIconSize returns the display size of item icons in pixels
func (s *Settings) GetIconSize() int {
	size := s.app.Preferences().Int(KeyIconSize)
	if size <= 0 {
		s.SetIconSize(DefaultIconSize)
		return DefaultIconSize
	}
	return size
}

// SetIconSize sets the display size of item icons, clamped to a sane range
func (s *Settings) SetIconSize(size int) {
	if size < MinIconSize {
		size = MinIconSize
	}
	if size > MaxIconSize {
		size = MaxIconSize
	}
	s.app.Preferences().SetInt(KeyIconSize, size)
}
