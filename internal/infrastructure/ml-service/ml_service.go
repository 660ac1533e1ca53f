package ml_service

import (
	"context"
	"fmt"
	"time"

	"github.com/DRSN-tech/voice-backend/internal/proto"
	"github.com/DRSN-tech/voice-backend/internal/usecase"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/jitter"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
)

// MLService клиент для взаимодействия с внешним сервисом извлечения
// голосовых эмбеддингов.
type MLService struct {
	client     proto.SpeakerEncoderClient
	sem        chan struct{}
	maxRetries int
	logger     logger.Logger
}

func NewMLService(client proto.SpeakerEncoderClient, maxConcurrent int, maxRetries int, logger logger.Logger) *MLService {
	return &MLService{
		client:     client,
		sem:        make(chan struct{}, maxConcurrent),
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// ExtractEmbedding извлекает эмбеддинг из аудиозаписи с retry-логикой
// и экспоненциальной задержкой. Конкурентность ограничена семафором,
// чтобы не перегружать энкодер.
func (m *MLService) ExtractEmbedding(ctx context.Context, req *usecase.ExtractReq) (*usecase.ExtractRes, error) {
	const (
		op         = "MLService.ExtractEmbedding"
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	select {
	case m.sem <- struct{}{}:
		defer func() { <-m.sem }()
	case <-ctx.Done():
		return nil, e.Wrap(op, ctx.Err())
	}

	var lastErr error
	for attempt := 0; attempt < m.maxRetries; attempt++ {
		res, err := m.extractOnce(ctx, req)
		if err == nil {
			return res, nil
		}
		lastErr = err

		if attempt == m.maxRetries-1 {
			break
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		m.logger.Warnf("embedding extraction failed, retrying in %v (attempt %d): %v", sleepTime, attempt+1, err)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return nil, e.Wrap(op, ctx.Err())
		}
	}

	return nil, e.Wrap(op, fmt.Errorf("all %d attempts failed: %w", m.maxRetries, lastErr))
}

// extractOnce выполняет единичный запрос к энкодеру.
func (m *MLService) extractOnce(ctx context.Context, req *usecase.ExtractReq) (*usecase.ExtractRes, error) {
	const op = "MLService.extractOnce"

	protoReq := proto.ExtractEmbeddingRequest{
		AudioData: req.Audio.Data,
	}

	res, err := m.client.ExtractEmbedding(ctx, &protoReq)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return usecase.NewExtractRes(res.Vector, res.ModelVersion), nil
}
