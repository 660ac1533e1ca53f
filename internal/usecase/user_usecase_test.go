package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/voice-backend/internal/domain"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	uc       *UserUseCase
	userRepo *fakeUserRepo
	embRepo  *fakeEmbeddingRepo
	cache    *fakeCacheRepo
}

func newUserFixture() *userFixture {
	f := &userFixture{
		userRepo: newFakeUserRepo(),
		embRepo:  newFakeEmbeddingRepo(),
		cache:    newFakeCacheRepo(),
	}
	f.uc = NewUserUC(f.userRepo, f.embRepo, f.cache, logger.NewSlogLogger())

	return f
}

func (f *userFixture) seedUser(name, surname, email string) *domain.User {
	user, err := f.userRepo.Create(context.Background(), domain.NewUser(name, surname, email))
	if err != nil {
		panic(err)
	}

	return user
}

func TestGetUserCacheHit(t *testing.T) {
	f := newUserFixture()
	f.cache.users[5] = NewUserInfo(5, "Ivan", "Petrov", "ivan@example.com")

	info, err := f.uc.GetUser(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Ivan", info.Name)
	// При попадании в кэш база не опрашивается
	assert.Zero(t, f.userRepo.getCalls)
}

func TestGetUserCacheMiss(t *testing.T) {
	f := newUserFixture()
	user := f.seedUser("Ivan", "Petrov", "ivan@example.com")

	info, err := f.uc.GetUser(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, info.ID)
	assert.Equal(t, "Petrov", info.Surname)
	assert.Equal(t, 1, f.userRepo.getCalls)
}

func TestGetUserNotFound(t *testing.T) {
	f := newUserFixture()

	_, err := f.uc.GetUser(context.Background(), 404)
	assert.ErrorIs(t, err, e.ErrUserNotFound)
}

func TestUpdateUserInvalidatesCache(t *testing.T) {
	f := newUserFixture()
	user := f.seedUser("Ivan", "Petrov", "ivan@example.com")
	f.cache.users[user.ID] = NewUserInfo(user.ID, "Ivan", "Petrov", "ivan@example.com")

	info, err := f.uc.UpdateUser(context.Background(), NewUpdateUserReq(user.ID, "Ivan", "Sidorov", "ivan@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "Sidorov", info.Surname)
	assert.Contains(t, f.cache.deleted, user.ID)
	assert.NotContains(t, f.cache.users, user.ID)
}

func TestUpdateUserValidation(t *testing.T) {
	f := newUserFixture()

	_, err := f.uc.UpdateUser(context.Background(), NewUpdateUserReq(0, "Ivan", "Petrov", "a@b.c"))
	assert.ErrorIs(t, err, e.ErrInvalidUserID)

	_, err = f.uc.UpdateUser(context.Background(), NewUpdateUserReq(1, "", "Petrov", "a@b.c"))
	assert.ErrorIs(t, err, e.ErrMissingFields)
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	f := newUserFixture()
	f.seedUser("Ivan", "Petrov", "ivan@example.com")
	second := f.seedUser("Petr", "Ivanov", "petr@example.com")

	_, err := f.uc.UpdateUser(context.Background(), NewUpdateUserReq(second.ID, "Petr", "Ivanov", "ivan@example.com"))
	assert.ErrorIs(t, err, e.ErrEmailAlreadyExists)
}

func TestDeleteUser(t *testing.T) {
	f := newUserFixture()
	user := f.seedUser("Ivan", "Petrov", "ivan@example.com")
	f.cache.users[user.ID] = NewUserInfo(user.ID, "Ivan", "Petrov", "ivan@example.com")

	require.NoError(t, f.uc.DeleteUser(context.Background(), user.ID))

	assert.Empty(t, f.userRepo.users)
	assert.Contains(t, f.cache.deleted, user.ID)
}

func TestDeleteUserNotFound(t *testing.T) {
	f := newUserFixture()

	err := f.uc.DeleteUser(context.Background(), 404)
	assert.ErrorIs(t, err, e.ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	f := newUserFixture()
	f.seedUser("Ivan", "Petrov", "ivan@example.com")
	f.seedUser("Petr", "Ivanov", "petr@example.com")

	users, err := f.uc.ListUsers(context.Background())
	require.NoError(t, err)

	require.Len(t, users, 2)
	assert.Equal(t, "ivan@example.com", users[0].Email)
	assert.Equal(t, "petr@example.com", users[1].Email)
}

func TestListUsersWithEmbeddings(t *testing.T) {
	f := newUserFixture()
	first := f.seedUser("Ivan", "Petrov", "ivan@example.com")
	second := f.seedUser("Petr", "Ivanov", "petr@example.com")
	third := f.seedUser("Anna", "Sidorova", "anna@example.com")

	f.embRepo.store[first.ID] = domain.NewEmbedding(first.ID, []float32{1, 2, 3}, nil)
	f.embRepo.store[third.ID] = domain.NewEmbedding(third.ID, []float32{4, 5, 6}, nil)

	result, err := f.uc.ListUsersWithEmbeddings(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 3)

	// Каждому пользователю сопоставлен его вектор либо nil
	assert.Equal(t, []float32{1, 2, 3}, result[0].Embedding)
	assert.Nil(t, result[1].Embedding)
	assert.Equal(t, second.ID, result[1].ID)
	assert.Equal(t, []float32{4, 5, 6}, result[2].Embedding)
}

func TestListUsersWithEmbeddingsEmpty(t *testing.T) {
	f := newUserFixture()

	result, err := f.uc.ListUsersWithEmbeddings(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
