package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/DRSN-tech/voice-backend/internal/domain"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/jackc/pgx/v5"
)

// Фейки слоёв repository и infrastructure для тестов usecase.

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	nextID int64

	getCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email == user.Email {
			return nil, e.ErrEmailAlreadyExists
		}
	}

	f.nextID++
	created := *user
	created.ID = f.nextID
	f.users[created.ID] = &created

	return &created, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.getCalls++
	user, ok := f.users[id]
	if !ok {
		return nil, e.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.users[user.ID]
	if !ok {
		return nil, e.ErrUserNotFound
	}

	for id, existing := range f.users {
		if id != user.ID && existing.Email == user.Email {
			return nil, e.ErrEmailAlreadyExists
		}
	}

	stored.Name = user.Name
	stored.Surname = user.Surname
	stored.Email = user.Email

	return stored, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[id]; !ok {
		return e.ErrUserNotFound
	}
	delete(f.users, id)

	return nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*domain.User, 0, len(f.users))
	for id := int64(1); id <= f.nextID; id++ {
		if user, ok := f.users[id]; ok {
			result = append(result, user)
		}
	}

	return result, nil
}

type fakeEmbeddingRepo struct {
	mu    sync.Mutex
	store map[int64]*domain.Embedding

	upsertErr error
	getErr    error
}

func newFakeEmbeddingRepo() *fakeEmbeddingRepo {
	return &fakeEmbeddingRepo{store: make(map[int64]*domain.Embedding)}
}

func (f *fakeEmbeddingRepo) Upsert(_ context.Context, embedding *domain.Embedding) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.store[embedding.UserID] = embedding

	return nil
}

func (f *fakeEmbeddingRepo) GetByUserID(_ context.Context, userID int64) (*domain.Embedding, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}

	return f.store[userID], nil
}

func (f *fakeEmbeddingRepo) GetByUserIDs(_ context.Context, userIDs []int64) (map[int64][]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}

	result := make(map[int64][]float32, len(userIDs))
	for _, id := range userIDs {
		if emb, ok := f.store[id]; ok {
			result[id] = emb.Vector
		}
	}

	return result, nil
}

type fakeVersionRepo struct {
	mu        sync.Mutex
	versions  map[int64]string
	revisions map[int64]int32
}

func newFakeVersionRepo() *fakeVersionRepo {
	return &fakeVersionRepo{
		versions:  make(map[int64]string),
		revisions: make(map[int64]int32),
	}
}

func (f *fakeVersionRepo) Upsert(_ context.Context, userID int64, modelVersion string) (*domain.EmbeddingVersion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.versions[userID] = modelVersion
	f.revisions[userID]++

	return &domain.EmbeddingVersion{
		UserID:       userID,
		ModelVersion: modelVersion,
		Revision:     f.revisions[userID],
	}, nil
}

type fakeOutboxRepo struct {
	mu     sync.Mutex
	events []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	created := *event
	created.ID = int64(len(f.events) + 1)
	f.events = append(f.events, &created)

	return &created, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(_ context.Context, limit int) ([]*OutboxEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []*OutboxEvent
	for _, event := range f.events {
		if len(result) == limit {
			break
		}
		if event.Status == Pending {
			event.Status = Processing
			result = append(result, event)
		}
	}

	return result, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, event := range f.events {
		if event.ID == id && event.Status == Processing {
			event.Status = Processed
		}
	}

	return nil
}

type fakeCacheRepo struct {
	mu    sync.Mutex
	users map[int64]UserInfo

	deleted []int64
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{users: make(map[int64]UserInfo)}
}

func (f *fakeCacheRepo) GetUsers(_ context.Context, ids []int64) (map[int64]UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make(map[int64]UserInfo, len(ids))
	for _, id := range ids {
		if info, ok := f.users[id]; ok {
			result[id] = info
		}
	}

	return result, nil
}

func (f *fakeCacheRepo) SetUsers(_ context.Context, users []UserInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, info := range users {
		f.users[info.ID] = info
	}

	return nil
}

func (f *fakeCacheRepo) DeleteUsers(_ context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, id := range ids {
		delete(f.users, id)
		f.deleted = append(f.deleted, id)
	}

	return nil
}

type fakeEncoder struct {
	vector       []float32
	modelVersion string
	err          error

	calls int
}

func (f *fakeEncoder) ExtractEmbedding(_ context.Context, _ *ExtractReq) (*ExtractRes, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	return NewExtractRes(f.vector, f.modelVersion), nil
}

type fakeTranscoder struct {
	err error
}

func (f *fakeTranscoder) EnsureWav(_ context.Context, audio *AudioUpload) (*AudioUpload, error) {
	if f.err != nil {
		return nil, f.err
	}

	return audio, nil
}

type fakeArchive struct {
	mu      sync.Mutex
	keys    []string
	cleaned []string
	err     error
}

func (f *fakeArchive) ArchiveSample(_ context.Context, req *ArchiveSampleReq) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}

	key := fmt.Sprintf("%s/%s", req.Prefix, req.Audio.Name)
	f.keys = append(f.keys, key)

	return key, nil
}

func (f *fakeArchive) CleanupSamples(keys []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleaned = append(f.cleaned, keys...)
}

func (f *fakeArchive) WaitForCleanup(_ context.Context) error { return nil }

// fakeTx покрывает только методы, которые дергает транзакционная обёртка:
// репозитории в тестах в саму транзакцию не ходят.
type fakeTx struct {
	pgx.Tx
	mu         sync.Mutex
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	tx *fakeTx
}

func (f *fakeDB) Begin(_ context.Context) (pgx.Tx, error) { return f.tx, nil }

func (f *fakeDB) BeginTx(_ context.Context, _ pgx.TxOptions) (pgx.Tx, error) {
	return f.tx, nil
}
