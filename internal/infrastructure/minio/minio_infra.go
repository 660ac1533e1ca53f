package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DRSN-tech/voice-backend/internal/cfg"
	"github.com/DRSN-tech/voice-backend/internal/domain"
	"github.com/DRSN-tech/voice-backend/internal/infrastructure"
	"github.com/DRSN-tech/voice-backend/internal/usecase"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"

	"github.com/google/uuid"
)

// MinioInfrastructure управляет архивированием и очисткой голосовых записей в MinIO.
type MinioInfrastructure struct {
	minioRepo   usecase.AudioSampleRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
}

func NewMinioInfrastructure(minioRepo usecase.AudioSampleRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:   minioRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		wg:          sync.WaitGroup{},
	}
}

// ArchiveSample загружает исходную голосовую запись в MinIO и возвращает ключ объекта.
// Запись кладётся под уникальным ключом, поэтому повторное архивирование
// для того же пользователя не перезаписывает предыдущие образцы.
func (m *MinioInfrastructure) ArchiveSample(ctx context.Context, req *usecase.ArchiveSampleReq) (string, error) {
	const op = "MinioInfrastructure.ArchiveSample"

	sampleID := uuid.NewString()
	ext, err := infrastructure.GetExtensionFromMIME(req.Audio.MimeType)
	if err != nil {
		return "", e.Wrap(op, fmt.Errorf("invalid mime type %s for %s: %w", req.Audio.MimeType, req.Audio.Name, err))
	}

	objKey := fmt.Sprintf("%s/%s-%s.%s", req.Prefix, req.Audio.Name, sampleID, ext)
	sample := domain.NewAudioSample(sampleID, m.cfg.BucketName, objKey, req.Audio.Data, &req.Audio.Size, &req.Audio.MimeType)

	key, err := m.minioRepo.Upload(ctx, sample)
	if err != nil {
		return "", e.Wrap(op, fmt.Errorf("upload %s failed: %w", req.Audio.Name, err))
	}

	return key, nil
}

// CleanupSamples запускает фоновую очистку указанных ключей MinIO
func (m *MinioInfrastructure) CleanupSamples(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// cleanupUploadedKeys удаляет указанные объекты из MinIO с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done() // сигнализируем завершение компенсации
	const op = "MinioInfrastructure.cleanupUploadedKeys"
	m.logger.Infof("%s: Cleaning up uploaded keys", op)

	// Создаём контекст с таймаутом на основе shutdownCtx
	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for _, key := range keys {
		backoff := time.Second
		for attempt := 0; attempt < 3; attempt++ {
			if err := m.minioRepo.Delete(ctx, key); err == nil {
				break // Успешно удалено
			}

			// Проверяем, не отменён ли контекст
			select {
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			default:
			}

			if attempt < 2 {
				// Добавляем jitter для распределения нагрузки
				jitter := time.Duration(time.Now().UnixNano() % int64(time.Second))
				sleepTime := backoff + jitter

				select {
				case <-time.After(sleepTime):
				case <-ctx.Done():
					m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
					return
				}
				backoff *= 2
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
