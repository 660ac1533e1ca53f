package usecase

import "time"

// VERIFICATION USECASE

// AudioUpload представляет аудиофайл, загруженный через multipart/form-data.
type AudioUpload struct {
	Data     []byte // байты аудиофайла
	MimeType string // Content-Type из multipart (audio/wav)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов и ключей архива)
}

// RegisterUserReq — запрос на регистрацию пользователя с образцом голоса.
type RegisterUserReq struct {
	Name    string
	Surname string
	Email   string
	Audio   *AudioUpload
}

// ProcessAudioReq — запрос на пересчёт эмбеддинга для существующего пользователя.
type ProcessAudioReq struct {
	UserID int64
	Audio  *AudioUpload
}

// CompareAudioReq — запрос на сравнение нового образца голоса с эталоном.
type CompareAudioReq struct {
	UserID int64
	Audio  *AudioUpload
}

// CompareAudioRes — результат сравнения.
// Similarity — косинусная дистанция в [0, 1]: 0 — идентичные голоса,
// 1 — максимально непохожие либо эталон отсутствует.
// Оба вектора возвращаются вызывающему для наблюдаемости.
type CompareAudioRes struct {
	Similarity      float64
	StoredEmbedding []float32
	NewEmbedding    []float32
}

// USER USECASE

// UpdateUserReq — запрос на изменение данных пользователя.
type UpdateUserReq struct {
	ID      int64
	Name    string
	Surname string
	Email   string
}

// UserInfo — DTO с данными пользователя для внешнего использования.
type UserInfo struct {
	ID      int64
	Name    string
	Surname string
	Email   string
}

// UserWithEmbedding — пользователь с его эмбеддингом (nil, если эмбеддинга нет).
type UserWithEmbedding struct {
	UserInfo
	Embedding []float32
}

// INFRASTRUCTURE

// ExtractReq — запрос на извлечение эмбеддинга из канонического WAV.
type ExtractReq struct {
	Audio *AudioUpload
}

// ExtractRes — результат извлечения эмбеддинга.
type ExtractRes struct {
	Vector       []float32
	ModelVersion string
}

// ArchiveSampleReq — запрос на архивирование исходной записи.
type ArchiveSampleReq struct {
	Prefix string // префикс ключа объекта (email при регистрации, user id при пересчёте)
	Audio  *AudioUpload
}

type WriteRawMessageReq struct {
	UserID  int64
	Payload []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	UserRegistered   OutboxEventType = "user.registered"
	EmbeddingUpdated OutboxEventType = "embedding.updated"
)

type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	UserID      int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewAudioUpload(data []byte, mimeType string, size int64, name string) *AudioUpload {
	return &AudioUpload{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewRegisterUserReq(name, surname, email string, audio *AudioUpload) *RegisterUserReq {
	return &RegisterUserReq{
		Name:    name,
		Surname: surname,
		Email:   email,
		Audio:   audio,
	}
}

func NewProcessAudioReq(userID int64, audio *AudioUpload) *ProcessAudioReq {
	return &ProcessAudioReq{
		UserID: userID,
		Audio:  audio,
	}
}

func NewCompareAudioReq(userID int64, audio *AudioUpload) *CompareAudioReq {
	return &CompareAudioReq{
		UserID: userID,
		Audio:  audio,
	}
}

func NewCompareAudioRes(similarity float64, stored, fresh []float32) *CompareAudioRes {
	return &CompareAudioRes{
		Similarity:      similarity,
		StoredEmbedding: stored,
		NewEmbedding:    fresh,
	}
}

func NewUpdateUserReq(id int64, name, surname, email string) *UpdateUserReq {
	return &UpdateUserReq{
		ID:      id,
		Name:    name,
		Surname: surname,
		Email:   email,
	}
}

func NewUserInfo(id int64, name, surname, email string) UserInfo {
	return UserInfo{
		ID:      id,
		Name:    name,
		Surname: surname,
		Email:   email,
	}
}

func NewExtractReq(audio *AudioUpload) *ExtractReq {
	return &ExtractReq{Audio: audio}
}

func NewExtractRes(vector []float32, modelVersion string) *ExtractRes {
	return &ExtractRes{
		Vector:       vector,
		ModelVersion: modelVersion,
	}
}

func NewArchiveSampleReq(prefix string, audio *AudioUpload) *ArchiveSampleReq {
	return &ArchiveSampleReq{
		Prefix: prefix,
		Audio:  audio,
	}
}

func NewWriteRawMessageReq(userID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		UserID:  userID,
		Payload: payload,
	}
}
