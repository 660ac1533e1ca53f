package converter

import "time"

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Surname   string     `db:"surname"`
	Email     string     `db:"email"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// EmbeddingVersionModel представляет запись таблицы embedding_versions в PostgreSQL.
type EmbeddingVersionModel struct {
	ID           int64      `db:"id"`
	UserID       int64      `db:"user_id"`
	ModelVersion string     `db:"model_version"`
	Revision     int32      `db:"revision"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	UserID      int64      `db:"user_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
