package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Белый список расширений: аудио и видео
var allowedExt = map[string]bool{
	".mp3": true,
	".mp4": true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// AllowedExtension проверяет расширение файла по белому списку.
func AllowedExtension(name string) bool {
	return allowedExt[strings.ToLower(filepath.Ext(name))]
}

// SanitizeFilename приводит имя к безопасному виду: отрезает путь,
// заменяет спецсимволы на "_". Расширение сохраняется и опускается
// в нижний регистр.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "file"
	}
	return base + strings.ToLower(ext)
}

// MimeForFilename: .mp4 — видео, всё остальное из белого списка — аудио.
func MimeForFilename(name string) string {
	if strings.ToLower(filepath.Ext(name)) == ".mp4" {
		return "video/mp4"
	}
	return "audio/mpeg"
}

// ValidateUpload — контракт создания записи: непустое тело, непустое имя,
// расширение из белого списка.
func ValidateUpload(filename string, content []byte) error {
	if len(content) == 0 {
		return ErrBadParams
	}
	if filename == "" || SanitizeFilename(filename) == "" {
		return ErrBadParams
	}
	if !AllowedExtension(filename) {
		return ErrBadParams
	}
	return nil
}
