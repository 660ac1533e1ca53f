package usecase

import "context"

// EncoderInfra — клиент внешнего сервиса извлечения голосовых эмбеддингов.
type EncoderInfra interface {
	ExtractEmbedding(ctx context.Context, req *ExtractReq) (*ExtractRes, error)
}

// TranscodeInfra приводит загруженное аудио к каноническому WAV-формату.
type TranscodeInfra interface {
	EnsureWav(ctx context.Context, audio *AudioUpload) (*AudioUpload, error)
}

// SampleArchiveInfra — архив исходных голосовых записей.
type SampleArchiveInfra interface {
	ArchiveSample(ctx context.Context, req *ArchiveSampleReq) (string, error)
	CleanupSamples(keys []string)
	WaitForCleanup(ctx context.Context) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
	Close() error
}
