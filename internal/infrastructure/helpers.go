package infrastructure

import "github.com/DRSN-tech/voice-backend/pkg/e"

// GetExtensionFromMIME возвращает расширение файла по MIME-типу аудиозаписи.
// Поддерживает wav, mp3, ogg, flac, webm. Возвращает ошибку e.ErrUnsupportedMediaType для неподдерживаемых типов.
func GetExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "audio/wav", "audio/x-wav", "audio/wave":
		return "wav", nil
	case "audio/mpeg", "audio/mp3":
		return "mp3", nil
	case "audio/ogg", "application/ogg":
		return "ogg", nil
	case "audio/flac", "audio/x-flac":
		return "flac", nil
	case "audio/webm", "video/webm":
		return "webm", nil
	default:
		return "bin", e.ErrUnsupportedMediaType
	}
}
