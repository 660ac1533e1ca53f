package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/voice-backend/internal/domain"
	"github.com/DRSN-tech/voice-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{
		pool: pool,
		conv: conv,
	}
}

// Create вставляет нового пользователя внутри транзакции из контекста.
// Нарушение уникальности email транслируется в e.ErrEmailAlreadyExists.
func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO users (name, surname, email)
		VALUES ($1, $2, $3)
		RETURNING id, name, surname, email, created_at, updated_at
	`

	var model converter.UserModel
	err = tx.QueryRow(ctx, query, user.Name, user.Surname, user.Email).
		Scan(&model.ID, &model.Name, &model.Surname, &model.Email, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmailAlreadyExists)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

// GetByID возвращает пользователя по ID либо e.ErrUserNotFound.
func (u *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, name, surname, email, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var model converter.UserModel
	err := u.pool.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.Surname, &model.Email, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

// Update изменяет данные пользователя. Отсутствие строки — e.ErrUserNotFound,
// коллизия email — e.ErrEmailAlreadyExists.
func (u *UserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		UPDATE users
		SET name = $1, surname = $2, email = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, surname, email, created_at, updated_at
	`

	var model converter.UserModel
	err := u.pool.QueryRow(ctx, query, user.Name, user.Surname, user.Email, user.ID).
		Scan(&model.ID, &model.Name, &model.Surname, &model.Email, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmailAlreadyExists)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

// Delete удаляет пользователя по ID либо возвращает e.ErrUserNotFound.
func (u *UserRepo) Delete(ctx context.Context, id int64) error {
	result, err := u.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
	}

	return nil
}

// List возвращает всех пользователей в порядке возрастания ID.
func (u *UserRepo) List(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, name, surname, email, created_at, updated_at
		FROM users
		ORDER BY id
	`

	rows, err := u.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.UserModel, 0)
	for rows.Next() {
		var model converter.UserModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Surname, &model.Email, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToArrEntity(models), nil
}

// postgresDuplicate распознаёт нарушение уникального ограничения (SQLSTATE 23505).
func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
