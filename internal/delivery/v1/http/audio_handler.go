package http

import (
	"net/http"

	"github.com/DRSN-tech/voice-backend/internal/usecase"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
)

type AudioHandler struct {
	verificationUsecase usecase.VerificationUC
	logger              logger.Logger
}

func NewAudioHandler(verificationUsecase usecase.VerificationUC, logger logger.Logger) *AudioHandler {
	return &AudioHandler{
		verificationUsecase: verificationUsecase,
		logger:              logger,
	}
}

// processAudio
//
//	@Summary		Пересчёт эмбеддинга пользователя
//	@Description	Извлекает эмбеддинг из новой записи и перезаписывает эталон
//	@Tags			audio
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			user_id	formData	int		true	"ID пользователя"
//	@Param			audio	formData	file	true	"Образец голоса"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/audio/process [post]
func (a *AudioHandler) processAudio(w http.ResponseWriter, r *http.Request) {
	req, err := a.parseAudioRequest(w, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := a.verificationUsecase.ProcessAudio(r.Context(), usecase.NewProcessAudioReq(req.userID, req.audio)); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, MessageResponse{Message: "audio processed"})
}

// compareAudio
//
//	@Summary		Сравнение голоса с эталоном
//	@Description	Возвращает косинусную дистанцию между новым образцом и сохранённым эмбеддингом. Если эталон не сохранён, similarity = 1.0 и stored_embedding пуст.
//	@Tags			audio
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			user_id	formData	int		true	"ID пользователя"
//	@Param			audio	formData	file	true	"Образец голоса"
//	@Success		200		{object}	CompareResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/audio/compare [post]
func (a *AudioHandler) compareAudio(w http.ResponseWriter, r *http.Request) {
	req, err := a.parseAudioRequest(w, r)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.verificationUsecase.CompareAudio(r.Context(), usecase.NewCompareAudioReq(req.userID, req.audio))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, CompareResponse{
		Similarity:      res.Similarity,
		StoredEmbedding: res.StoredEmbedding,
		NewEmbedding:    res.NewEmbedding,
	})
}

type audioRequest struct {
	userID int64
	audio  *usecase.AudioUpload
}

// parseAudioRequest разбирает общую форму запросов /audio/*: user_id + файл.
func (a *AudioHandler) parseAudioRequest(w http.ResponseWriter, r *http.Request) (*audioRequest, error) {
	const (
		maxTotalRequestSize = 60 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		return nil, err
	}

	userID, err := parseUserID(r)
	if err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		return nil, err
	}

	audio, err := parseAudio(r.MultipartForm.File["audio"])
	if err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		return nil, err
	}

	return &audioRequest{userID: userID, audio: audio}, nil
}
