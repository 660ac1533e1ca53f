package domain

import "time"

// Payload описывает дополнительную информацию вектора
type Payload map[string]any

// Embedding представляет голосовой эмбеддинг одного пользователя.
// Идентификатором точки в Qdrant служит числовой ID пользователя,
// поэтому повторное сохранение перезаписывает прежний вектор.
type Embedding struct {
	UserID  int64
	Vector  []float32
	Payload Payload
}

func NewEmbedding(userID int64, vector []float32, payload Payload) *Embedding {
	return &Embedding{
		UserID:  userID,
		Vector:  vector,
		Payload: payload,
	}
}

func NewPayload(userID int64, sampleKey string, modelVersion string) Payload {
	return Payload{
		"user_id":       userID,
		"sample_key":    sampleKey,
		"created_at":    time.Now().UTC().UnixNano(),
		"model_version": modelVersion,
	}
}
