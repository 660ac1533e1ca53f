//go:generate goverter gen github.com/DRSN-tech/voice-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/voice-backend/internal/domain"
	"github.com/DRSN-tech/voice-backend/internal/usecase"
)

// UserConverter преобразует сущности User между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type UserConverter interface {
	ToModel(entity *domain.User) *UserModel
	ToEntity(model *UserModel) *domain.User
	ToArrEntity(models []*UserModel) []*domain.User
}

// EmbeddingVersionConverter преобразует сущности EmbeddingVersion между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type EmbeddingVersionConverter interface {
	ToModel(entity *domain.EmbeddingVersion) *EmbeddingVersionModel
	ToEntity(model *EmbeddingVersionModel) *domain.EmbeddingVersion
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertOutBoxStatus(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertOutboxEventType(t string) usecase.OutboxEventType {
	return usecase.OutboxEventType(t)
}
