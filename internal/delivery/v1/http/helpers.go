package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/voice-backend/internal/usecase"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// Коды машинно-читаемой части контракта ошибок.
const (
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeEmailAlreadyExists = "EMAIL_ALREADY_EXISTS"
	CodeExtractionFailed   = "EMBEDDING_EXTRACTION_FAILED"
	CodeStoreFailed        = "EMBEDDING_STORE_FAILED"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeInternalError      = "INTERNAL_SERVER_ERROR"
)

// ErrorBody — машинно-читаемый код и человекочитаемое сообщение.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse — единый контракт ошибок для всех неуспешных ответов.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// UserResponse — представление пользователя в ответах API.
type UserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

// UserWithEmbeddingResponse — пользователь с его эмбеддингом (null, если не сохранён).
type UserWithEmbeddingResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Embedding []float32 `json:"embedding"`
}

// CompareResponse — результат сравнения голоса с эталоном.
type CompareResponse struct {
	Similarity      float64   `json:"similarity"`
	StoredEmbedding []float32 `json:"stored_embedding"`
	NewEmbedding    []float32 `json:"new_embedding"`
}

// MessageResponse — подтверждение выполнения операции.
type MessageResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorBody{Code: code, Message: message}}
}

func NewUserResponse(info *usecase.UserInfo) *UserResponse {
	return &UserResponse{
		ID:      info.ID,
		Name:    info.Name,
		Surname: info.Surname,
		Email:   info.Email,
	}
}

// ToHTTPResponse транслирует ошибки приложения в HTTP-статус и код контракта.
func ToHTTPResponse(err error) (int, string, string) {
	switch {
	case errors.Is(err, e.ErrUserNotFound):
		return http.StatusNotFound, CodeUserNotFound, e.ErrUserNotFound.Error()
	case errors.Is(err, e.ErrEmailAlreadyExists):
		return http.StatusBadRequest, CodeEmailAlreadyExists, e.ErrEmailAlreadyExists.Error()
	case errors.Is(err, e.ErrExtractionFailed):
		return http.StatusBadRequest, CodeExtractionFailed, e.ErrExtractionFailed.Error()
	case errors.Is(err, e.ErrTranscodeFailed):
		return http.StatusBadRequest, CodeExtractionFailed, e.ErrTranscodeFailed.Error()
	case errors.Is(err, e.ErrEmbeddingStoreFailed):
		return http.StatusInternalServerError, CodeStoreFailed, e.ErrEmbeddingStoreFailed.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, CodeValidationError, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, CodeValidationError, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrInvalidUserID):
		return http.StatusBadRequest, CodeValidationError, e.ErrInvalidUserID.Error()
	case errors.Is(err, e.ErrNoAudio):
		return http.StatusBadRequest, CodeValidationError, e.ErrNoAudio.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, CodeValidationError, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusBadRequest, CodeValidationError, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, CodeValidationError, e.ErrStatusBadRequest.Error()
	default:
		return http.StatusInternalServerError, CodeInternalError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	status, code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

func parseUserForm(r *http.Request) (name, surname, email string, err error) {
	name = r.FormValue("name")
	surname = r.FormValue("surname")
	email = r.FormValue("email")

	if name == "" || surname == "" || email == "" {
		return "", "", "", e.Wrap(fmt.Sprintf("name: %s, surname: %s, email: %s", name, surname, email), e.ErrMissingFields)
	}

	return name, surname, email, nil
}

// parseUserID извлекает user_id из формы либо query-параметров.
func parseUserID(r *http.Request) (int64, error) {
	raw := r.FormValue("user_id")
	if raw == "" {
		raw = r.URL.Query().Get("user_id")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(whereami.WhereAmI(), e.ErrInvalidUserID)
	}

	return id, nil
}

// parseAudio читает единственный аудиофайл из multipart-формы.
func parseAudio(files []*multipart.FileHeader) (*usecase.AudioUpload, error) {
	const maxFileSize = 50 << 20

	if len(files) == 0 {
		return nil, e.ErrNoAudio
	}

	fh := files[0]
	data, mimeType, err := readFile(fh, maxFileSize)
	if err != nil {
		return nil, err
	}

	return usecase.NewAudioUpload(data, mimeType, int64(len(data)), fh.Filename), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data[:min(len(data), 512)])
	}
	return data, mimeType, nil
}
