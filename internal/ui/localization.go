package ui

import (
	"github.com/mememe-app/mememe/internal/editor"
	"github.com/mememe-app/mememe/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyCamera           = "camera"
	KeyAlbum            = "album"
	KeyFont             = "font"
	KeyDone             = "done"
	KeyShare            = "share"
	KeyCancel           = "cancel"
	KeySettings         = "settings"
	KeyGallery          = "gallery"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyBrowse           = "browse"
	KeyGalleryDirectory = "gallery_directory"
	KeyLibraryDirectory = "library_directory"
	KeyFontsDirectory   = "fonts_directory"
	KeyCropOnPick       = "crop_on_pick"
	KeyConfirmSaving    = "confirm_saving"
	KeySettingsSaved    = "settings_saved"
	KeyOpenFolder       = "open_folder"
	KeyRemove           = "remove"
	KeyGalleryEmpty     = "gallery_empty"
	KeySaveToPhotos     = "save_to_photos"
	KeySaveAs           = "save_as"
	KeyCopyToClipboard  = "copy_to_clipboard"
	KeyPathCopied       = "path_copied"

	KeySourceCamera  = "source_camera"
	KeySourceLibrary = "source_library"

	KeyDismiss = "dismiss"
	KeyOk      = "ok"
	KeyYes     = "yes"
	KeyNo      = "no"

	KeyNotFoundTitle         = "not_found_title"
	KeyNotFoundFormat        = "not_found_format"
	KeyPickFailedTitle       = "pick_failed_title"
	KeyPickFailedFormat      = "pick_failed_format"
	KeyNotSavedTitle         = "not_saved_title"
	KeyNotSavedFormat        = "not_saved_format"
	KeySavedTitle            = "saved_title"
	KeySavedMessage          = "saved_message"
	KeyDeleteTitle           = "delete_title"
	KeyDeleteMessage         = "delete_message"
	KeyFontUnavailableTitle  = "font_unavailable_title"
	KeyFontUnavailableFormat = "font_unavailable_format"
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

// Messages returns the editor's dialog strings in the current language
func (l *Localization) Messages() editor.Messages {
	return editor.Messages{
		DismissButton: l.GetText(KeyDismiss),
		OkButton:      l.GetText(KeyOk),
		YesButton:     l.GetText(KeyYes),
		NoButton:      l.GetText(KeyNo),

		NotFoundTitle:  l.GetText(KeyNotFoundTitle),
		NotFoundFormat: l.GetText(KeyNotFoundFormat),

		PickFailedTitle:  l.GetText(KeyPickFailedTitle),
		PickFailedFormat: l.GetText(KeyPickFailedFormat),

		NotSavedTitle:  l.GetText(KeyNotSavedTitle),
		NotSavedFormat: l.GetText(KeyNotSavedFormat),

		SavedTitle:   l.GetText(KeySavedTitle),
		SavedMessage: l.GetText(KeySavedMessage),

		DeleteTitle:   l.GetText(KeyDeleteTitle),
		DeleteMessage: l.GetText(KeyDeleteMessage),

		FontUnavailableTitle:  l.GetText(KeyFontUnavailableTitle),
		FontUnavailableFormat: l.GetText(KeyFontUnavailableFormat),

		SourceNames: map[model.Source]string{
			model.SourceCamera:  l.GetText(KeySourceCamera),
			model.SourceLibrary: l.GetText(KeySourceLibrary),
		},
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "MemeMe",
		KeyCamera:           "Camera",
		KeyAlbum:            "Album",
		KeyFont:             "Font",
		KeyDone:             "Done",
		KeyShare:            "Share",
		KeyCancel:           "Cancel",
		KeySettings:         "Settings",
		KeyGallery:          "Saved Memes",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyBrowse:           "Browse",
		KeyGalleryDirectory: "Gallery Directory",
		KeyLibraryDirectory: "Photos Directory",
		KeyFontsDirectory:   "Extra Fonts Directory",
		KeyCropOnPick:       "Crop picked photos to the canvas",
		KeyConfirmSaving:    "Confirm when a meme is saved",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyOpenFolder:       "Open Folder",
		KeyRemove:           "Remove",
		KeyGalleryEmpty:     "No memes saved yet",
		KeySaveToPhotos:     "Save to Photos",
		KeySaveAs:           "Save As...",
		KeyCopyToClipboard:  "Copy to Clipboard",
		KeyPathCopied:       "Path copied to clipboard",

		KeySourceCamera:  "Camera",
		KeySourceLibrary: "Photo Library",

		KeyDismiss: "Dismiss",
		KeyOk:      "Ok",
		KeyYes:     "Yes",
		KeyNo:      "No",

		KeyNotFoundTitle:         "Not Found",
		KeyNotFoundFormat:        "Resource %s is not found",
		KeyPickFailedTitle:       "Photo not loaded",
		KeyPickFailedFormat:      "Could not load the photo: %v",
		KeyNotSavedTitle:         "Meme not saved",
		KeyNotSavedFormat:        "Fail to save meme to app library: %v",
		KeySavedTitle:            "Meme Saved",
		KeySavedMessage:          "Your meme is saved to photos",
		KeyDeleteTitle:           "Delete",
		KeyDeleteMessage:         "Are you sure want to cancel? Any changes made will be reset.",
		KeyFontUnavailableTitle:  "Font not available",
		KeyFontUnavailableFormat: "The font %q could not be loaded. The previous font is kept.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "MemeMe",
		KeyCamera:           "Камера",
		KeyAlbum:            "Альбом",
		KeyFont:             "Шрифт",
		KeyDone:             "Готово",
		KeyShare:            "Поделиться",
		KeyCancel:           "Отмена",
		KeySettings:         "Настройки",
		KeyGallery:          "Сохранённые мемы",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeySave:             "Сохранить",
		KeyBrowse:           "Обзор",
		KeyGalleryDirectory: "Папка галереи",
		KeyLibraryDirectory: "Папка фотографий",
		KeyFontsDirectory:   "Папка дополнительных шрифтов",
		KeyCropOnPick:       "Обрезать фото под холст",
		KeyConfirmSaving:    "Сообщать о сохранении мема",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyOpenFolder:       "Открыть папку",
		KeyRemove:           "Удалить",
		KeyGalleryEmpty:     "Сохранённых мемов пока нет",
		KeySaveToPhotos:     "Сохранить в фото",
		KeySaveAs:           "Сохранить как...",
		KeyCopyToClipboard:  "Копировать в буфер",
		KeyPathCopied:       "Путь скопирован в буфер обмена",

		KeySourceCamera:  "Камера",
		KeySourceLibrary: "Фотобиблиотека",

		KeyDismiss: "Закрыть",
		KeyOk:      "Ок",
		KeyYes:     "Да",
		KeyNo:      "Нет",

		KeyNotFoundTitle:         "Не найдено",
		KeyNotFoundFormat:        "Ресурс %s не найден",
		KeyPickFailedTitle:       "Фото не загружено",
		KeyPickFailedFormat:      "Не удалось загрузить фото: %v",
		KeyNotSavedTitle:         "Мем не сохранён",
		KeyNotSavedFormat:        "Не удалось сохранить мем в библиотеку: %v",
		KeySavedTitle:            "Мем сохранён",
		KeySavedMessage:          "Ваш мем сохранён в фото",
		KeyDeleteTitle:           "Удаление",
		KeyDeleteMessage:         "Вы уверены, что хотите отменить? Все изменения будут сброшены.",
		KeyFontUnavailableTitle:  "Шрифт недоступен",
		KeyFontUnavailableFormat: "Не удалось загрузить шрифт %q. Оставлен прежний шрифт.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "MemeMe",
		KeyCamera:           "Câmera",
		KeyAlbum:            "Álbum",
		KeyFont:             "Fonte",
		KeyDone:             "Pronto",
		KeyShare:            "Compartilhar",
		KeyCancel:           "Cancelar",
		KeySettings:         "Configurações",
		KeyGallery:          "Memes Salvos",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeySave:             "Salvar",
		KeyBrowse:           "Navegar",
		KeyGalleryDirectory: "Diretório da Galeria",
		KeyLibraryDirectory: "Diretório de Fotos",
		KeyFontsDirectory:   "Diretório de Fontes Extras",
		KeyCropOnPick:       "Recortar fotos para a tela",
		KeyConfirmSaving:    "Confirmar quando um meme for salvo",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyOpenFolder:       "Abrir Pasta",
		KeyRemove:           "Remover",
		KeyGalleryEmpty:     "Nenhum meme salvo ainda",
		KeySaveToPhotos:     "Salvar em Fotos",
		KeySaveAs:           "Salvar Como...",
		KeyCopyToClipboard:  "Copiar",
		KeyPathCopied:       "Caminho copiado",

		KeySourceCamera:  "Câmera",
		KeySourceLibrary: "Biblioteca de Fotos",

		KeyDismiss: "Fechar",
		KeyOk:      "Ok",
		KeyYes:     "Sim",
		KeyNo:      "Não",

		KeyNotFoundTitle:         "Não Encontrado",
		KeyNotFoundFormat:        "Recurso %s não encontrado",
		KeyPickFailedTitle:       "Foto não carregada",
		KeyPickFailedFormat:      "Não foi possível carregar a foto: %v",
		KeyNotSavedTitle:         "Meme não salvo",
		KeyNotSavedFormat:        "Falha ao salvar o meme na biblioteca: %v",
		KeySavedTitle:            "Meme Salvo",
		KeySavedMessage:          "Seu meme foi salvo nas fotos",
		KeyDeleteTitle:           "Excluir",
		KeyDeleteMessage:         "Tem certeza de que deseja cancelar? Todas as alterações serão perdidas.",
		KeyFontUnavailableTitle:  "Fonte indisponível",
		KeyFontUnavailableFormat: "Não foi possível carregar a fonte %q. A fonte anterior foi mantida.",
	}
}
