package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/DRSN-tech/voice-backend/internal/domain"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type verificationFixture struct {
	uc       *VerificationUseCase
	userRepo *fakeUserRepo
	embRepo  *fakeEmbeddingRepo
	verRepo  *fakeVersionRepo
	outbox   *fakeOutboxRepo
	cache    *fakeCacheRepo
	encoder  *fakeEncoder
	archive  *fakeArchive
	tx       *fakeTx
}

func newVerificationFixture() *verificationFixture {
	f := &verificationFixture{
		userRepo: newFakeUserRepo(),
		embRepo:  newFakeEmbeddingRepo(),
		verRepo:  newFakeVersionRepo(),
		outbox:   &fakeOutboxRepo{},
		cache:    newFakeCacheRepo(),
		encoder:  &fakeEncoder{vector: []float32{0.1, 0.2, 0.3}, modelVersion: "wespeaker-v1"},
		archive:  &fakeArchive{},
		tx:       &fakeTx{},
	}

	f.uc = NewVerificationUC(
		f.userRepo,
		f.embRepo,
		f.verRepo,
		f.outbox,
		f.cache,
		&fakeDB{tx: f.tx},
		f.encoder,
		&fakeTranscoder{},
		f.archive,
		logger.NewSlogLogger(),
	)

	return f
}

func testAudio() *AudioUpload {
	data := []byte("RIFF....WAVEfmt ")
	return NewAudioUpload(data, "audio/wav", int64(len(data)), "sample.wav")
}

func TestRegisterUserStoresEmbedding(t *testing.T) {
	f := newVerificationFixture()

	info, err := f.uc.RegisterUser(context.Background(), NewRegisterUserReq("Ivan", "Petrov", "ivan@example.com", testAudio()))
	require.NoError(t, err)
	require.NotNil(t, info)

	assert.Equal(t, int64(1), info.ID)
	assert.Equal(t, "Ivan", info.Name)
	assert.Equal(t, "ivan@example.com", info.Email)

	// Вектор сохранён под ID пользователя
	stored := f.embRepo.store[info.ID]
	require.NotNil(t, stored)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, stored.Vector)
	assert.Equal(t, "wespeaker-v1", stored.Payload["model_version"])

	// Версия модели отмечена, первая ревизия
	assert.Equal(t, "wespeaker-v1", f.verRepo.versions[info.ID])
	assert.Equal(t, int32(1), f.verRepo.revisions[info.ID])

	// Событие регистрации записано в outbox
	require.Len(t, f.outbox.events, 1)
	event := f.outbox.events[0]
	assert.Equal(t, UserRegistered, event.EventType)
	assert.Equal(t, info.ID, event.UserID)
	assert.Equal(t, Pending, event.Status)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "wespeaker-v1", payload["model_version"])

	assert.True(t, f.tx.committed)
	assert.Len(t, f.archive.keys, 1)
	assert.Empty(t, f.archive.cleaned)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	f := newVerificationFixture()

	_, err := f.uc.RegisterUser(context.Background(), NewRegisterUserReq("Ivan", "Petrov", "ivan@example.com", testAudio()))
	require.NoError(t, err)

	_, err = f.uc.RegisterUser(context.Background(), NewRegisterUserReq("Petr", "Ivanov", "ivan@example.com", testAudio()))
	require.ErrorIs(t, err, e.ErrEmailAlreadyExists)

	// Второй пользователь не создан, его эмбеддинга нет
	assert.Len(t, f.userRepo.users, 1)
	assert.Len(t, f.embRepo.store, 1)

	// Архивная копия второй записи подчищена
	assert.Len(t, f.archive.cleaned, 1)
}

func TestRegisterUserValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *RegisterUserReq
		wantErr error
	}{
		{"EmptyName", NewRegisterUserReq("", "Petrov", "a@b.c", testAudio()), e.ErrMissingFields},
		{"EmptySurname", NewRegisterUserReq("Ivan", "  ", "a@b.c", testAudio()), e.ErrMissingFields},
		{"EmptyEmail", NewRegisterUserReq("Ivan", "Petrov", "", testAudio()), e.ErrMissingFields},
		{"NilAudio", NewRegisterUserReq("Ivan", "Petrov", "a@b.c", nil), e.ErrNoAudio},
		{"EmptyAudio", NewRegisterUserReq("Ivan", "Petrov", "a@b.c", NewAudioUpload(nil, "audio/wav", 0, "x.wav")), e.ErrNoAudio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVerificationFixture()

			_, err := f.uc.RegisterUser(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.encoder.calls)
			assert.Empty(t, f.userRepo.users)
		})
	}
}

func TestRegisterUserEncoderFailure(t *testing.T) {
	f := newVerificationFixture()
	f.encoder.err = fmt.Errorf("encoder unavailable")

	_, err := f.uc.RegisterUser(context.Background(), NewRegisterUserReq("Ivan", "Petrov", "ivan@example.com", testAudio()))
	require.ErrorIs(t, err, e.ErrExtractionFailed)

	// Невалидное извлечение не оставляет следов
	assert.Empty(t, f.userRepo.users)
	assert.Empty(t, f.embRepo.store)
	assert.Empty(t, f.outbox.events)
}

func TestProcessAudioOverwritesEmbedding(t *testing.T) {
	f := newVerificationFixture()
	f.embRepo.store[7] = domain.NewEmbedding(7, []float32{9, 9, 9}, nil)
	f.cache.users[7] = NewUserInfo(7, "Ivan", "Petrov", "ivan@example.com")

	err := f.uc.ProcessAudio(context.Background(), NewProcessAudioReq(7, testAudio()))
	require.NoError(t, err)

	// Прежний вектор перезаписан, а не добавлен рядом
	assert.Len(t, f.embRepo.store, 1)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, f.embRepo.store[7].Vector)

	// Кэш пользователя сброшен
	assert.Contains(t, f.cache.deleted, int64(7))

	require.Len(t, f.outbox.events, 1)
	assert.Equal(t, EmbeddingUpdated, f.outbox.events[0].EventType)
	assert.Equal(t, int64(7), f.outbox.events[0].UserID)
}

func TestProcessAudioInvalidUserID(t *testing.T) {
	f := newVerificationFixture()

	err := f.uc.ProcessAudio(context.Background(), NewProcessAudioReq(0, testAudio()))
	assert.ErrorIs(t, err, e.ErrInvalidUserID)

	err = f.uc.ProcessAudio(context.Background(), NewProcessAudioReq(-3, testAudio()))
	assert.ErrorIs(t, err, e.ErrInvalidUserID)
}

func TestCompareAudioWithoutStoredEmbedding(t *testing.T) {
	f := newVerificationFixture()

	res, err := f.uc.CompareAudio(context.Background(), NewCompareAudioReq(42, testAudio()))
	require.NoError(t, err)

	// Отсутствие эталона — максимальная дистанция, не ошибка
	assert.Equal(t, 1.0, res.Similarity)
	assert.NotNil(t, res.StoredEmbedding)
	assert.Empty(t, res.StoredEmbedding)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, res.NewEmbedding)
}

func TestCompareAudioIdenticalVoice(t *testing.T) {
	f := newVerificationFixture()
	f.embRepo.store[1] = domain.NewEmbedding(1, []float32{0.1, 0.2, 0.3}, nil)

	res, err := f.uc.CompareAudio(context.Background(), NewCompareAudioReq(1, testAudio()))
	require.NoError(t, err)

	assert.InDelta(t, 0.0, res.Similarity, 1e-6)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, res.StoredEmbedding)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, res.NewEmbedding)
}

func TestCompareAudioVectorSizeMismatch(t *testing.T) {
	f := newVerificationFixture()
	f.embRepo.store[1] = domain.NewEmbedding(1, []float32{0.1, 0.2}, nil)

	_, err := f.uc.CompareAudio(context.Background(), NewCompareAudioReq(1, testAudio()))
	assert.ErrorIs(t, err, e.ErrVectorSizeMismatch)
}

func TestCompareAudioStoreUnavailable(t *testing.T) {
	f := newVerificationFixture()
	f.embRepo.getErr = fmt.Errorf("qdrant unavailable")

	_, err := f.uc.CompareAudio(context.Background(), NewCompareAudioReq(1, testAudio()))
	assert.ErrorIs(t, err, e.ErrEmbeddingStoreFailed)
}
