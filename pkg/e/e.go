package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки с векторами
	ErrEmptyVector        = fmt.Errorf("embedding vector is empty")
	ErrVectorSizeMismatch = fmt.Errorf("embedding vector size mismatch")

	// Ошибки извлечения эмбеддинга и транскодирования
	ErrExtractionFailed = fmt.Errorf("embedding extraction failed")
	ErrTranscodeFailed  = fmt.Errorf("audio transcode failed")

	// Ошибки хранилища эмбеддингов
	ErrEmbeddingStoreFailed = fmt.Errorf("embedding store failed")

	// 404 Not Found
	ErrUserNotFound = fmt.Errorf("user not found")

	// 400 Conflict по уникальному email
	ErrEmailAlreadyExists = fmt.Errorf("a user with this email already exists")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("name, surname and email are required")
	ErrInvalidUserID        = fmt.Errorf("invalid user id")
	ErrNoAudio              = fmt.Errorf("no audio file provided")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
