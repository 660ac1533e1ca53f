package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/voice-backend/internal/domain"
	"github.com/DRSN-tech/voice-backend/pkg/distance"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VerificationUseCase реализует регистрацию голоса и проверку говорящего.
type VerificationUseCase struct {
	userRepo      UserRepository
	embeddingRepo EmbeddingRepository
	versionRepo   EmbeddingVersionRepository
	outboxRepo    OutboxRepository
	cacheRepo     CacheRepository
	dbPool        transaction.Transactional
	encoder       EncoderInfra
	transcoder    TranscodeInfra
	archive       SampleArchiveInfra
	logger        logger.Logger
}

func NewVerificationUC(
	userRepo UserRepository,
	embeddingRepo EmbeddingRepository,
	versionRepo EmbeddingVersionRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	encoder EncoderInfra,
	transcoder TranscodeInfra,
	archive SampleArchiveInfra,
	logger logger.Logger,
) *VerificationUseCase {
	return &VerificationUseCase{
		userRepo:      userRepo,
		embeddingRepo: embeddingRepo,
		versionRepo:   versionRepo,
		outboxRepo:    outboxRepo,
		cacheRepo:     cacheRepo,
		dbPool:        dbPool,
		encoder:       encoder,
		transcoder:    transcoder,
		archive:       archive,
		logger:        logger,
	}
}

// RegisterUser регистрирует пользователя по образцу голоса.
// Фаза 1: запись пользователя и outbox-события в одной транзакции.
// Фаза 2: сохранение эмбеддинга в Qdrant и отметка версии модели.
// Падение второй фазы оставляет пользователя без эмбеддинга — компенсация
// выполняется повторной отправкой аудио через ProcessAudio.
func (v *VerificationUseCase) RegisterUser(ctx context.Context, req *RegisterUserReq) (*UserInfo, error) {
	const op = "VerificationUseCase.RegisterUser"

	var err error
	if err = v.validateRegister(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Приведение к каноническому WAV и извлечение эмбеддинга до любых записей:
	// невалидное аудио не должно оставлять следов в хранилищах.
	vector, err := v.extractVector(ctx, req.Audio)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Архивирование исходной записи — вспомогательный след, не часть контракта
	sampleKey := ""
	if key, archiveErr := v.archive.ArchiveSample(ctx, NewArchiveSampleReq(req.Email, req.Audio)); archiveErr != nil {
		v.logger.Warnf("sample archive failed, continuing without audit copy: %v", e.Wrap(op, archiveErr))
	} else {
		sampleKey = key
	}

	var user *domain.User

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, v.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка архивной записи
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if sampleKey != "" {
				v.logger.Warnf(
					"Cleaning up orphaned voice sample after registration failure. email: %s, error: %v",
					req.Email,
					e.Wrap(op, err),
				)

				v.archive.CleanupSamples([]string{sampleKey})
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	user, err = v.userRepo.Create(ctx, domain.NewUser(req.Name, req.Surname, req.Email))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = v.createOutboxEvent(ctx, UserRegistered, user.ID, vector.ModelVersion); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фаза 2: пользователь уже зафиксирован, эмбеддинг пишется отдельно
	if err = v.storeEmbedding(ctx, user.ID, sampleKey, vector); err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewUserInfo(user.ID, user.Name, user.Surname, user.Email)
	return &info, nil
}

// ProcessAudio пересчитывает и перезаписывает эмбеддинг существующего пользователя.
func (v *VerificationUseCase) ProcessAudio(ctx context.Context, req *ProcessAudioReq) error {
	const op = "VerificationUseCase.ProcessAudio"

	if req.UserID <= 0 {
		return e.Wrap(op, e.ErrInvalidUserID)
	}
	if err := v.validateAudio(req.Audio); err != nil {
		return e.Wrap(op, err)
	}

	vector, err := v.extractVector(ctx, req.Audio)
	if err != nil {
		return e.Wrap(op, err)
	}

	sampleKey := ""
	prefix := fmt.Sprintf("%d", req.UserID)
	if key, archiveErr := v.archive.ArchiveSample(ctx, NewArchiveSampleReq(prefix, req.Audio)); archiveErr != nil {
		v.logger.Warnf("sample archive failed, continuing without audit copy: %v", e.Wrap(op, archiveErr))
	} else {
		sampleKey = key
	}

	if err := v.storeEmbedding(ctx, req.UserID, sampleKey, vector); err != nil {
		return e.Wrap(op, err)
	}

	if err := v.notifyEmbeddingUpdated(ctx, req.UserID, vector.ModelVersion); err != nil {
		v.logger.Warnf("embedding.updated event not recorded: %v", e.Wrap(op, err))
	}

	return nil
}

// CompareAudio сравнивает новый образец голоса с сохранённым эталоном.
// Отсутствие эталона — не ошибка: возвращается максимальная дистанция 1.0
// и пустой сохранённый вектор.
func (v *VerificationUseCase) CompareAudio(ctx context.Context, req *CompareAudioReq) (*CompareAudioRes, error) {
	const op = "VerificationUseCase.CompareAudio"

	if req.UserID <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidUserID)
	}
	if err := v.validateAudio(req.Audio); err != nil {
		return nil, e.Wrap(op, err)
	}

	fresh, err := v.extractVector(ctx, req.Audio)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	stored, err := v.embeddingRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("%w: %v", e.ErrEmbeddingStoreFailed, err))
	}

	if stored == nil {
		v.logger.Warnf("no stored embedding for user_id: %d, returning max distance", req.UserID)
		return NewCompareAudioRes(1.0, []float32{}, fresh.Vector), nil
	}

	if len(stored.Vector) != len(fresh.Vector) {
		return nil, e.Wrap(op, e.ErrVectorSizeMismatch)
	}

	similarity := distance.Cosine(stored.Vector, fresh.Vector)
	return NewCompareAudioRes(similarity, stored.Vector, fresh.Vector), nil
}

// extractVector приводит аудио к каноническому WAV и запрашивает эмбеддинг у энкодера.
func (v *VerificationUseCase) extractVector(ctx context.Context, audio *AudioUpload) (*ExtractRes, error) {
	wav, err := v.transcoder.EnsureWav(ctx, audio)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrExtractionFailed, err)
	}

	res, err := v.encoder.ExtractEmbedding(ctx, NewExtractReq(wav))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrExtractionFailed, err)
	}

	if len(res.Vector) == 0 {
		return nil, e.ErrEmptyVector
	}

	return res, nil
}

// storeEmbedding перезаписывает эмбеддинг пользователя и отметку версии модели.
// Отметка версии пишется только после успешной записи вектора и служит
// признаком зафиксированного эмбеддинга.
func (v *VerificationUseCase) storeEmbedding(ctx context.Context, userID int64, sampleKey string, vector *ExtractRes) error {
	payload := domain.NewPayload(userID, sampleKey, vector.ModelVersion)
	if err := v.embeddingRepo.Upsert(ctx, domain.NewEmbedding(userID, vector.Vector, payload)); err != nil {
		return fmt.Errorf("%w: %v", e.ErrEmbeddingStoreFailed, err)
	}

	if _, err := v.versionRepo.Upsert(ctx, userID, vector.ModelVersion); err != nil {
		v.logger.Warnf("embedding version mark failed for user_id %d: %v", userID, err)
	}

	if err := v.cacheRepo.DeleteUsers(ctx, []int64{userID}); err != nil {
		v.logger.Warnf("cache invalidation failed for user_id %d: %v", userID, err)
	}

	return nil
}

// notifyEmbeddingUpdated записывает outbox-событие в собственной короткой транзакции.
func (v *VerificationUseCase) notifyEmbeddingUpdated(ctx context.Context, userID int64, modelVersion string) error {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, v.dbPool)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = v.createOutboxEvent(ctx, EmbeddingUpdated, userID, modelVersion); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (v *VerificationUseCase) createOutboxEvent(ctx context.Context, eventType OutboxEventType, userID int64, modelVersion string) error {
	payload, err := json.Marshal(map[string]any{
		"user_id":       userID,
		"event_type":    eventType,
		"model_version": modelVersion,
		"occurred_at":   time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = v.outboxRepo.Create(ctx, &OutboxEvent{
		EventID:   uuid.NewString(),
		EventType: eventType,
		UserID:    userID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	})

	return err
}

// validateRegister проверяет корректность входных данных запроса на регистрацию.
func (v *VerificationUseCase) validateRegister(req *RegisterUserReq) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Surname) == "" ||
		strings.TrimSpace(req.Email) == "" {
		return e.ErrMissingFields
	}

	return v.validateAudio(req.Audio)
}

func (v *VerificationUseCase) validateAudio(audio *AudioUpload) error {
	if audio == nil || len(audio.Data) == 0 {
		return e.ErrNoAudio
	}

	return nil
}
