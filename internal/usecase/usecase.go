package usecase

import "context"

// UserUC — операции CRUD над пользователями.
type UserUC interface {
	GetUser(ctx context.Context, id int64) (*UserInfo, error)
	UpdateUser(ctx context.Context, req *UpdateUserReq) (*UserInfo, error)
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context) ([]UserInfo, error)
	ListUsersWithEmbeddings(ctx context.Context) ([]UserWithEmbedding, error)
}

// VerificationUC — регистрация голоса и сравнение говорящего с эталоном.
type VerificationUC interface {
	RegisterUser(ctx context.Context, req *RegisterUserReq) (*UserInfo, error)
	ProcessAudio(ctx context.Context, req *ProcessAudioReq) error
	CompareAudio(ctx context.Context, req *CompareAudioReq) (*CompareAudioRes, error)
}
