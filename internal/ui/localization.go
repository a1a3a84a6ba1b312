package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyChampionName    = "champion_name"
	KeySearch          = "search"
	KeyStatusReady     = "status_ready"
	KeyStatusSearching = "status_searching"
	KeyStatusSuccess   = "status_success"
	KeyStatusConnError = "status_connection_error"
	KeyStatusNotFound  = "status_not_found"
	KeyErrorTitle      = "error_title"
	KeyNotFoundTitle   = "not_found_title"
	KeyMsgConnError    = "msg_connection_error"
	KeyMsgNotFound     = "msg_not_found"
	KeyNoData          = "no_data"
	KeyColWinRate      = "col_win_rate"
	KeyColPickRate     = "col_pick_rate"
	KeyColGames        = "col_games"
	KeyColItems        = "col_items"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyPleaseEnterName = "please_enter_name"
	KeyDefaultChampion = "default_champion"
	KeyIconSize        = "icon_size"
	KeySettingsSaved   = "settings_saved"
	KeyFetchInProgress = "fetch_in_progress"
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

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "ARAM Builds",
		KeyChampionName:    "Champion Name:",
		KeySearch:          "Search",
		KeyStatusReady:     "Ready",
		KeyStatusSearching: "Searching for '%s'...",
		KeyStatusSuccess:   "Success",
		KeyStatusConnError: "Connection Error",
		KeyStatusNotFound:  "Champion Not Found",
		KeyErrorTitle:      "Error",
		KeyNotFoundTitle:   "Not Found",
		KeyMsgConnError:    "Could not connect to the build site. Check your internet connection.",
		KeyMsgNotFound:     "Could not find ARAM data for this champion.\nCheck the spelling.",
		KeyNoData:          "No data found.",
		KeyColWinRate:      "Win Rate",
		KeyColPickRate:     "Pick Rate",
		KeyColGames:        "Games",
		KeyColItems:        "Items",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyPleaseEnterName: "Please enter a champion name",
		KeyDefaultChampion: "Default Champion",
		KeyIconSize:        "Icon Size (px)",
		KeySettingsSaved:   "Settings saved",
		KeyFetchInProgress: "A search is already in progress",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Сборки ARAM",
		KeyChampionName:    "Имя чемпиона:",
		KeySearch:          "Поиск",
		KeyStatusReady:     "Готово",
		KeyStatusSearching: "Поиск '%s'...",
		KeyStatusSuccess:   "Успешно",
		KeyStatusConnError: "Ошибка соединения",
		KeyStatusNotFound:  "Чемпион не найден",
		KeyErrorTitle:      "Ошибка",
		KeyNotFoundTitle:   "Не найдено",
		KeyMsgConnError:    "Не удалось подключиться к сайту сборок. Проверьте подключение к интернету.",
		KeyMsgNotFound:     "Не удалось найти данные ARAM для этого чемпиона.\nПроверьте написание.",
		KeyNoData:          "Данные не найдены.",
		KeyColWinRate:      "Винрейт",
		KeyColPickRate:     "Пикрейт",
		KeyColGames:        "Игры",
		KeyColItems:        "Предметы",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyPleaseEnterName: "Введите имя чемпиона",
		KeyDefaultChampion: "Чемпион по умолчанию",
		KeyIconSize:        "Размер иконок (px)",
		KeySettingsSaved:   "Настройки сохранены",
		KeyFetchInProgress: "Поиск уже выполняется",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Builds ARAM",
		KeyChampionName:    "Nome do campeão:",
		KeySearch:          "Buscar",
		KeyStatusReady:     "Pronto",
		KeyStatusSearching: "Buscando '%s'...",
		KeyStatusSuccess:   "Sucesso",
		KeyStatusConnError: "Erro de conexão",
		KeyStatusNotFound:  "Campeão não encontrado",
		KeyErrorTitle:      "Erro",
		KeyNotFoundTitle:   "Não encontrado",
		KeyMsgConnError:    "Não foi possível conectar ao site de builds. Verifique sua conexão.",
		KeyMsgNotFound:     "Não foi possível encontrar dados ARAM para este campeão.\nVerifique a ortografia.",
		KeyNoData:          "Nenhum dado encontrado.",
		KeyColWinRate:      "Taxa de vitória",
		KeyColPickRate:     "Taxa de escolha",
		KeyColGames:        "Partidas",
		KeyColItems:        "Itens",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyPleaseEnterName: "Digite o nome de um campeão",
		KeyDefaultChampion: "Campeão padrão",
		KeyIconSize:        "Tamanho dos ícones (px)",
		KeySettingsSaved:   "Configurações salvas",
		KeyFetchInProgress: "Uma busca já está em andamento",
	}
}
