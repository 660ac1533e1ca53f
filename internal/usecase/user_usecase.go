package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/voice-backend/internal/domain"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
)

// UserUseCase реализует CRUD-операции над пользователями с кэшированием чтения.
type UserUseCase struct {
	userRepo      UserRepository
	embeddingRepo EmbeddingRepository
	cacheRepo     CacheRepository
	logger        logger.Logger
}

func NewUserUC(
	userRepo UserRepository,
	embeddingRepo EmbeddingRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:      userRepo,
		embeddingRepo: embeddingRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
	}
}

// GetUser возвращает пользователя по ID, сначала проверяя кэш.
func (u *UserUseCase) GetUser(ctx context.Context, id int64) (*UserInfo, error) {
	const op = "UserUseCase.GetUser"

	if cached, err := u.cacheRepo.GetUsers(ctx, []int64{id}); err == nil {
		if info, ok := cached[id]; ok {
			return &info, nil
		}
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewUserInfo(user.ID, user.Name, user.Surname, user.Email)

	// Фоновое добавление пользователя в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := u.cacheRepo.SetUsers(bgCtx, []UserInfo{info}); err != nil {
			u.logger.Warnf("Failed to cache user in background: %v", e.Wrap(op, err))
		}
	}()

	return &info, nil
}

// UpdateUser изменяет данные пользователя и сбрасывает его кэш.
func (u *UserUseCase) UpdateUser(ctx context.Context, req *UpdateUserReq) (*UserInfo, error) {
	const op = "UserUseCase.UpdateUser"

	if req.ID <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidUserID)
	}
	if req.Name == "" || req.Surname == "" || req.Email == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	user := domain.NewUser(req.Name, req.Surname, req.Email)
	user.ID = req.ID

	updated, err := u.userRepo.Update(ctx, user)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := u.cacheRepo.DeleteUsers(ctx, []int64{req.ID}); err != nil {
		u.logger.Warnf("Failed to invalidate user cache: %v", e.Wrap(op, err))
	}

	info := NewUserInfo(updated.ID, updated.Name, updated.Surname, updated.Email)
	return &info, nil
}

// DeleteUser удаляет пользователя. Эмбеддинг в Qdrant при этом не трогается.
func (u *UserUseCase) DeleteUser(ctx context.Context, id int64) error {
	const op = "UserUseCase.DeleteUser"

	if id <= 0 {
		return e.Wrap(op, e.ErrInvalidUserID)
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err := u.cacheRepo.DeleteUsers(ctx, []int64{id}); err != nil {
		u.logger.Warnf("Failed to invalidate user cache: %v", e.Wrap(op, err))
	}

	return nil
}

// ListUsers возвращает всех пользователей.
func (u *UserUseCase) ListUsers(ctx context.Context) ([]UserInfo, error) {
	const op = "UserUseCase.ListUsers"

	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]UserInfo, 0, len(users))
	for _, user := range users {
		result = append(result, NewUserInfo(user.ID, user.Name, user.Surname, user.Email))
	}

	return result, nil
}

// ListUsersWithEmbeddings возвращает всех пользователей, каждому из которых
// сопоставлен его эмбеддинг либо nil, если эмбеддинг не сохранён.
// Объединение выполняется в приложении: список пользователей из PostgreSQL,
// вектора — одним запросом в Qdrant по ID пользователей.
func (u *UserUseCase) ListUsersWithEmbeddings(ctx context.Context) ([]UserWithEmbedding, error) {
	const op = "UserUseCase.ListUsersWithEmbeddings"

	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(users) == 0 {
		return []UserWithEmbedding{}, nil
	}

	ids := make([]int64, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}

	vectors, err := u.embeddingRepo.GetByUserIDs(ctx, ids)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]UserWithEmbedding, 0, len(users))
	for _, user := range users {
		result = append(result, UserWithEmbedding{
			UserInfo:  NewUserInfo(user.ID, user.Name, user.Surname, user.Email),
			Embedding: vectors[user.ID],
		})
	}

	return result, nil
}
