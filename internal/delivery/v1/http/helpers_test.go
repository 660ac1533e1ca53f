package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"UserNotFound", e.ErrUserNotFound, http.StatusNotFound, CodeUserNotFound},
		{"WrappedUserNotFound", e.Wrap("UserUseCase.GetUser", e.ErrUserNotFound), http.StatusNotFound, CodeUserNotFound},
		{"EmailAlreadyExists", e.ErrEmailAlreadyExists, http.StatusBadRequest, CodeEmailAlreadyExists},
		{"ExtractionFailed", e.ErrExtractionFailed, http.StatusBadRequest, CodeExtractionFailed},
		{"TranscodeFailed", e.ErrTranscodeFailed, http.StatusBadRequest, CodeExtractionFailed},
		{"StoreFailed", e.ErrEmbeddingStoreFailed, http.StatusInternalServerError, CodeStoreFailed},
		{"MissingFields", e.ErrMissingFields, http.StatusBadRequest, CodeValidationError},
		{"InvalidUserID", e.ErrInvalidUserID, http.StatusBadRequest, CodeValidationError},
		{"NoAudio", e.ErrNoAudio, http.StatusBadRequest, CodeValidationError},
		{"FileTooLarge", e.ErrFileTooLarge, http.StatusBadRequest, CodeValidationError},
		{"ExpectedMultipart", e.ErrExpectedMultipart, http.StatusBadRequest, CodeValidationError},
		{"Unknown", assert.AnError, http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, msg := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestWriteErrorContract(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, e.Wrap("VerificationUseCase.RegisterUser", e.ErrEmailAlreadyExists))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, CodeEmailAlreadyExists, body.Error.Code)
	assert.Equal(t, e.ErrEmailAlreadyExists.Error(), body.Error.Message)
}

func TestParseUserID(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		query   string
		want    int64
		wantErr bool
	}{
		{"FromForm", url.Values{"user_id": {"12"}}, "", 12, false},
		{"FromQuery", url.Values{}, "user_id=7", 7, false},
		{"Missing", url.Values{}, "", 0, true},
		{"NotANumber", url.Values{"user_id": {"abc"}}, "", 0, true},
		{"Zero", url.Values{"user_id": {"0"}}, "", 0, true},
		{"Negative", url.Values{"user_id": {"-5"}}, "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/audio/process"
			if tt.query != "" {
				target += "?" + tt.query
			}

			req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			id, err := parseUserID(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, e.ErrInvalidUserID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestEnsureMultipartFormRejectsOtherContentTypes(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")

	err := ensureMultipartForm(req, 32<<20)
	assert.ErrorIs(t, err, e.ErrExpectedMultipart)
}

func TestCompareResponseSerialization(t *testing.T) {
	data, err := json.Marshal(CompareResponse{
		Similarity:      0.42,
		StoredEmbedding: []float32{0.1, 0.2},
		NewEmbedding:    []float32{0.3, 0.4},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"similarity":0.42,"stored_embedding":[0.1,0.2],"new_embedding":[0.3,0.4]}`, string(data))
}

// Пользователь без сохранённого эмбеддинга сериализуется с embedding: null.
func TestUserWithEmbeddingNullSerialization(t *testing.T) {
	data, err := json.Marshal(UserWithEmbeddingResponse{
		ID:      3,
		Name:    "Ivan",
		Surname: "Petrov",
		Email:   "ivan@example.com",
	})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"embedding":null`)
}
