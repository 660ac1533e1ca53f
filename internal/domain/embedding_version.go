package domain

import "time"

// EmbeddingVersion — отметка о сохранённом эмбеддинге пользователя:
// какая версия модели его посчитала и когда он был записан.
type EmbeddingVersion struct {
	ID           int64
	UserID       int64
	ModelVersion string
	Revision     int32
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
