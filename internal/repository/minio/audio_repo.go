package minio

import (
	"bytes"
	"context"

	"github.com/DRSN-tech/voice-backend/internal/cfg"
	"github.com/DRSN-tech/voice-backend/internal/domain"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// AudioSampleRepo реализует архив голосовых записей поверх MinIO.
type AudioSampleRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewAudioSampleRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *AudioSampleRepo {
	return &AudioSampleRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает голосовую запись в MinIO и возвращает ключ объекта.
func (a *AudioSampleRepo) Upload(ctx context.Context, sample *domain.AudioSample) (string, error) {
	reader := bytes.NewReader(sample.Bytes)

	info, err := a.mc.PutObject(ctx, a.cfg.BucketName, sample.ObjectKey, reader, *sample.Size, minio.PutObjectOptions{
		ContentType: *sample.ContentType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Delete удаляет объект из MinIO по указанному ключу.
func (a *AudioSampleRepo) Delete(ctx context.Context, key string) error {
	if err := a.mc.RemoveObject(ctx, a.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
