package domain

// AudioSample описывает исходную аудиозапись, которая хранится в S3
type AudioSample struct {
	ID        string // uuid
	Bucket    string
	ObjectKey string
	Bytes     []byte
	// Передайте значение -1 в Size, если размер потока неизвестен
	// (внимание: при передаче значения -1 будет выделен большой объем памяти).
	Size        *int64
	ContentType *string // Example: "audio/wav"
}

func NewAudioSample(id string, bucket string, objectKey string, data []byte, size *int64, contentType *string) *AudioSample {
	return &AudioSample{
		ID:          id,
		Bucket:      bucket,
		ObjectKey:   objectKey,
		Bytes:       data,
		Size:        size,
		ContentType: contentType,
	}
}
