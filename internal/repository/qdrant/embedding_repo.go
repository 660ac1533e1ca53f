package qdrant

import (
	"context"

	"github.com/DRSN-tech/voice-backend/internal/cfg"
	"github.com/DRSN-tech/voice-backend/internal/domain"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/qdrant/go-client/qdrant"
)

// EmbeddingRepo репозиторий для работы с голосовыми эмбеддингами в Qdrant.
// ID точки совпадает с ID пользователя, поэтому Upsert всегда перезаписывает
// единственный вектор пользователя.
type EmbeddingRepo struct {
	client *qdrant.Client
	cfg    *cfg.QdrantCfg
}

func NewEmbeddingRepo(client *qdrant.Client, cfg *cfg.QdrantCfg) *EmbeddingRepo {
	return &EmbeddingRepo{
		client: client,
		cfg:    cfg,
	}
}

// Upsert сохраняет или перезаписывает эмбеддинг пользователя в коллекции Qdrant.
func (q *EmbeddingRepo) Upsert(ctx context.Context, embedding *domain.Embedding) error {
	points := []*qdrant.PointStruct{
		{
			Id:      qdrant.NewIDNum(uint64(embedding.UserID)),
			Vectors: qdrant.NewVectors(embedding.Vector...),
			Payload: qdrant.NewValueMap(embedding.Payload),
		},
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Points:         points,
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// GetByUserID возвращает эмбеддинг пользователя либо (nil, nil), если вектор
// для него не сохранён.
func (q *EmbeddingRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Embedding, error) {
	points, err := q.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Ids:            []*qdrant.PointId{qdrant.NewIDNum(uint64(userID))},
		WithVectors:    qdrant.NewWithVectors(true),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(points) == 0 {
		return nil, nil
	}

	point := points[0]
	embedding := domain.NewEmbedding(
		int64(point.GetId().GetNum()),
		point.GetVectors().GetVector().GetData(),
		payloadToMap(point.GetPayload()),
	)

	return embedding, nil
}

// GetByUserIDs возвращает вектора сразу для нескольких пользователей одним
// запросом. Пользователи без эмбеддинга в результирующей map отсутствуют.
func (q *EmbeddingRepo) GetByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]float32, error) {
	if len(userIDs) == 0 {
		return map[int64][]float32{}, nil
	}

	ids := make([]*qdrant.PointId, 0, len(userIDs))
	for _, id := range userIDs {
		ids = append(ids, qdrant.NewIDNum(uint64(id)))
	}

	points, err := q.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: q.cfg.QdrantCollectionName,
		Ids:            ids,
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	vectors := make(map[int64][]float32, len(points))
	for _, point := range points {
		vectors[int64(point.GetId().GetNum())] = point.GetVectors().GetVector().GetData()
	}

	return vectors, nil
}

// payloadToMap конвертирует payload Qdrant обратно в плоскую map.
func payloadToMap(payload map[string]*qdrant.Value) domain.Payload {
	if payload == nil {
		return nil
	}

	result := make(domain.Payload, len(payload))
	for key, value := range payload {
		switch v := value.GetKind().(type) {
		case *qdrant.Value_StringValue:
			result[key] = v.StringValue
		case *qdrant.Value_IntegerValue:
			result[key] = v.IntegerValue
		case *qdrant.Value_DoubleValue:
			result[key] = v.DoubleValue
		case *qdrant.Value_BoolValue:
			result[key] = v.BoolValue
		}
	}

	return result
}
