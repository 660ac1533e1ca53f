package pgdb

import (
	"context"

	"github.com/DRSN-tech/voice-backend/internal/domain"
	"github.com/DRSN-tech/voice-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// EmbeddingVersionRepo хранит маркеры записанных эмбеддингов.
// Запись в этой таблице означает, что для пользователя в Qdrant
// зафиксирован вектор; revision растёт при каждой перезаписи.
type EmbeddingVersionRepo struct {
	pool *pgxpool.Pool
	conv converter.EmbeddingVersionConverter
}

func NewEmbeddingVersionRepo(pool *pgxpool.Pool, conv converter.EmbeddingVersionConverter) *EmbeddingVersionRepo {
	return &EmbeddingVersionRepo{
		pool: pool,
		conv: conv,
	}
}

// Upsert выполняется вне транзакции: вектор к этому моменту уже записан
// в Qdrant, и маркер фиксируется отдельным запросом.
func (r *EmbeddingVersionRepo) Upsert(ctx context.Context, userID int64, modelVersion string) (*domain.EmbeddingVersion, error) {
	var model converter.EmbeddingVersionModel
	query := `
	INSERT INTO embedding_versions (user_id, model_version)
    VALUES ($1, $2)
    ON CONFLICT (user_id)
    DO UPDATE SET revision = embedding_versions.revision + 1,
                  model_version = EXCLUDED.model_version,
                  updated_at = NOW()
    RETURNING id, user_id, model_version, revision, created_at, updated_at;
	`

	err := r.pool.QueryRow(ctx, query, userID, modelVersion).Scan(
		&model.ID,
		&model.UserID,
		&model.ModelVersion,
		&model.Revision,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(&model), nil
}
