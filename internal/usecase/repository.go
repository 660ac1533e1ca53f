package usecase

import (
	"context"

	"github.com/DRSN-tech/voice-backend/internal/domain"
)

type UserRepository interface {
	// Create выполняется внутри транзакции из контекста.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.User, error)
}

type EmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *domain.Embedding) error
	// GetByUserID возвращает (nil, nil), если эмбеддинг для пользователя не сохранён.
	GetByUserID(ctx context.Context, userID int64) (*domain.Embedding, error)
	GetByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]float32, error)
}

type AudioSampleRepository interface {
	Upload(ctx context.Context, sample *domain.AudioSample) (string, error)
	Delete(ctx context.Context, key string) error
}

type CacheRepository interface {
	GetUsers(ctx context.Context, ids []int64) (map[int64]UserInfo, error)
	SetUsers(ctx context.Context, users []UserInfo) error
	DeleteUsers(ctx context.Context, ids []int64) error
}

type OutboxRepository interface {
	// Create выполняется внутри транзакции из контекста.
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type EmbeddingVersionRepository interface {
	Upsert(ctx context.Context, userID int64, modelVersion string) (*domain.EmbeddingVersion, error)
}
