package ui

// Package ui provides user interface components

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyToday           = "today"
	KeyAddEvent        = "add_event"
	KeyEditEvent       = "edit_event"
	KeyDeleteEvent     = "delete_event"
	KeyDeleteAll       = "delete_all"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyEdit            = "edit"
	KeyLanguage        = "language"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyDelete          = "delete"
	KeyClose           = "close"
	KeyTitle           = "title"
	KeyDate            = "date"
	KeyStartTime       = "start_time"
	KeyEndTime         = "end_time"
	KeyDescription     = "description"
	KeyColor           = "color"
	KeyExportJSON      = "export_json"
	KeyExportICS       = "export_ics"
	KeyImportJSON      = "import_json"
	KeySampleEvents    = "sample_events"
	KeyEventSaved      = "event_saved"
	KeyEventDeleted    = "event_deleted"
	KeyAllDeleted      = "all_deleted"
	KeySettingsSaved   = "settings_saved"
	KeyConfirmDelete   = "confirm_delete"
	KeyConfirmClearAll = "confirm_clear_all"
	KeySearch          = "search"
	KeyUpcoming        = "upcoming"
	KeyNoEvents        = "no_events"
	KeyStorageWarning  = "storage_warning"
	KeySaveFailed      = "save_failed"
	KeyImportFailed    = "import_failed"
	KeyImportSummary   = "import_summary"
	KeyExportFailed    = "export_failed"
	KeyDefaultColor    = "default_color"
	KeyMaxEvents       = "max_events"
	KeyUpcomingLimit   = "upcoming_limit"
	KeyConfirmDeletes  = "confirm_deletes"
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
		KeyAppTitle:        "Pocket Calendar",
		KeyToday:           "Today",
		KeyAddEvent:        "Add Event",
		KeyEditEvent:       "Edit Event",
		KeyDeleteEvent:     "Delete Event",
		KeyDeleteAll:       "Delete All Events",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyEdit:            "Edit",
		KeyLanguage:        "Language",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyDelete:          "Delete",
		KeyClose:           "Close",
		KeyTitle:           "Title",
		KeyDate:            "Date",
		KeyStartTime:       "Start Time",
		KeyEndTime:         "End Time",
		KeyDescription:     "Description",
		KeyColor:           "Color",
		KeyExportJSON:      "Export as JSON",
		KeyExportICS:       "Export as iCalendar",
		KeyImportJSON:      "Import from JSON",
		KeySampleEvents:    "Add Sample Events",
		KeyEventSaved:      "Event saved",
		KeyEventDeleted:    "Event deleted",
		KeyAllDeleted:      "All events deleted",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyConfirmDelete:   "Delete this event?",
		KeyConfirmClearAll: "Delete all events? This cannot be undone.",
		KeySearch:          "Search events",
		KeyUpcoming:        "Upcoming",
		KeyNoEvents:        "No events",
		KeyStorageWarning:  "Storage is unavailable. Events will not persist.",
		KeySaveFailed:      "Could not save event",
		KeyImportFailed:    "Import failed",
		KeyImportSummary:   "Imported %d of %d events",
		KeyExportFailed:    "Export failed",
		KeyDefaultColor:    "Default Event Color",
		KeyMaxEvents:       "Max Events",
		KeyUpcomingLimit:   "Upcoming List Limit",
		KeyConfirmDeletes:  "Confirm before deleting",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Карманный календарь",
		KeyToday:           "Сегодня",
		KeyAddEvent:        "Добавить событие",
		KeyEditEvent:       "Изменить событие",
		KeyDeleteEvent:     "Удалить событие",
		KeyDeleteAll:       "Удалить все события",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyEdit:            "Правка",
		KeyLanguage:        "Язык",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyDelete:          "Удалить",
		KeyClose:           "Закрыть",
		KeyTitle:           "Название",
		KeyDate:            "Дата",
		KeyStartTime:       "Начало",
		KeyEndTime:         "Конец",
		KeyDescription:     "Описание",
		KeyColor:           "Цвет",
		KeyExportJSON:      "Экспорт в JSON",
		KeyExportICS:       "Экспорт в iCalendar",
		KeyImportJSON:      "Импорт из JSON",
		KeySampleEvents:    "Добавить примеры событий",
		KeyEventSaved:      "Событие сохранено",
		KeyEventDeleted:    "Событие удалено",
		KeyAllDeleted:      "Все события удалены",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyConfirmDelete:   "Удалить это событие?",
		KeyConfirmClearAll: "Удалить все события? Это действие необратимо.",
		KeySearch:          "Поиск событий",
		KeyUpcoming:        "Предстоящие",
		KeyNoEvents:        "Нет событий",
		KeyStorageWarning:  "Хранилище недоступно. События не будут сохранены.",
		KeySaveFailed:      "Не удалось сохранить событие",
		KeyImportFailed:    "Ошибка импорта",
		KeyImportSummary:   "Импортировано %d из %d событий",
		KeyExportFailed:    "Ошибка экспорта",
		KeyDefaultColor:    "Цвет события по умолчанию",
		KeyMaxEvents:       "Макс. событий",
		KeyUpcomingLimit:   "Лимит списка предстоящих",
		KeyConfirmDeletes:  "Подтверждать удаление",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Calendário de Bolso",
		KeyToday:           "Hoje",
		KeyAddEvent:        "Adicionar Evento",
		KeyEditEvent:       "Editar Evento",
		KeyDeleteEvent:     "Excluir Evento",
		KeyDeleteAll:       "Excluir Todos os Eventos",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyEdit:            "Editar",
		KeyLanguage:        "Idioma",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyDelete:          "Excluir",
		KeyClose:           "Fechar",
		KeyTitle:           "Título",
		KeyDate:            "Data",
		KeyStartTime:       "Hora de Início",
		KeyEndTime:         "Hora de Término",
		KeyDescription:     "Descrição",
		KeyColor:           "Cor",
		KeyExportJSON:      "Exportar como JSON",
		KeyExportICS:       "Exportar como iCalendar",
		KeyImportJSON:      "Importar de JSON",
		KeySampleEvents:    "Adicionar Eventos de Exemplo",
		KeyEventSaved:      "Evento salvo",
		KeyEventDeleted:    "Evento excluído",
		KeyAllDeleted:      "Todos os eventos excluídos",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyConfirmDelete:   "Excluir este evento?",
		KeyConfirmClearAll: "Excluir todos os eventos? Isso não pode ser desfeito.",
		KeySearch:          "Pesquisar eventos",
		KeyUpcoming:        "Próximos",
		KeyNoEvents:        "Sem eventos",
		KeyStorageWarning:  "Armazenamento indisponível. Os eventos não serão salvos.",
		KeySaveFailed:      "Não foi possível salvar o evento",
		KeyImportFailed:    "Falha na importação",
		KeyImportSummary:   "Importados %d de %d eventos",
		KeyExportFailed:    "Falha na exportação",
		KeyDefaultColor:    "Cor Padrão do Evento",
		KeyMaxEvents:       "Máximo de Eventos",
		KeyUpcomingLimit:   "Limite da Lista de Próximos",
		KeyConfirmDeletes:  "Confirmar antes de excluir",
	}
}
