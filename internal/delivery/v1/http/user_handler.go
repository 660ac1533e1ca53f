package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/voice-backend/internal/usecase"
	"github.com/DRSN-tech/voice-backend/pkg/e"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userUsecase         usecase.UserUC
	verificationUsecase usecase.VerificationUC
	logger              logger.Logger
}

func NewUserHandler(userUsecase usecase.UserUC, verificationUsecase usecase.VerificationUC, logger logger.Logger) *UserHandler {
	return &UserHandler{
		userUsecase:         userUsecase,
		verificationUsecase: verificationUsecase,
		logger:              logger,
	}
}

// registerNewUser
//
//	@Summary		Регистрация нового пользователя
//	@Description	Создаёт пользователя и сохраняет эмбеддинг его голоса
//	@Tags			users
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name	formData	string	true	"Имя"
//	@Param			surname	formData	string	true	"Фамилия"
//	@Param			email	formData	string	true	"Email (уникальный)"
//	@Param			audio	formData	file	true	"Образец голоса"
//	@Success		200		{object}	UserResponse	"Созданный пользователь"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации или email уже занят"
//	@Failure		500		{object}	ErrorResponse	"Внутренняя ошибка"
//	@Router			/users [post]
func (u *UserHandler) registerNewUser(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 60 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		u.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	name, surname, email, err := parseUserForm(r)
	if err != nil {
		u.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	audio, err := parseAudio(r.MultipartForm.File["audio"])
	if err != nil {
		u.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	info, err := u.verificationUsecase.RegisterUser(r.Context(), usecase.NewRegisterUserReq(name, surname, email, audio))
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewUserResponse(info))
}

// getUser
//
//	@Summary	Получение пользователя по ID
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"ID пользователя"
//	@Success	200	{object}	UserResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/users/{id} [get]
func (u *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := u.userUsecase.GetUser(r.Context(), id)
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewUserResponse(info))
}

// updateUser
//
//	@Summary	Изменение данных пользователя
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"ID пользователя"
//	@Param		user	body		UpdateUserBody	true	"Новые данные"
//	@Success	200		{object}	UserResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/users/{id} [put]
func (u *UserHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var body UpdateUserBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, e.Wrap(err.Error(), e.ErrStatusBadRequest))
		return
	}

	info, err := u.userUsecase.UpdateUser(r.Context(), usecase.NewUpdateUserReq(id, body.Name, body.Surname, body.Email))
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewUserResponse(info))
}

// deleteUser
//
//	@Summary	Удаление пользователя
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"ID пользователя"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/users/{id} [delete]
func (u *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := u.userUsecase.DeleteUser(r.Context(), id); err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, MessageResponse{Message: "user deleted"})
}

// listUsers
//
//	@Summary	Список всех пользователей
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}	UserResponse
//	@Router		/users [get]
func (u *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := u.userUsecase.ListUsers(r.Context())
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]UserResponse, 0, len(users))
	for i := range users {
		result = append(result, *NewUserResponse(&users[i]))
	}

	WriteSuccess(w, http.StatusOK, result)
}

// listUsersWithEmbeddings
//
//	@Summary	Список пользователей с их эмбеддингами
//	@Description	Каждому пользователю сопоставлен его эмбеддинг либо null
//	@Tags		users
//	@Produce	json
//	@Success	200	{array}	UserWithEmbeddingResponse
//	@Router		/users_with_embeddings [get]
func (u *UserHandler) listUsersWithEmbeddings(w http.ResponseWriter, r *http.Request) {
	users, err := u.userUsecase.ListUsersWithEmbeddings(r.Context())
	if err != nil {
		u.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]UserWithEmbeddingResponse, 0, len(users))
	for _, user := range users {
		result = append(result, UserWithEmbeddingResponse{
			ID:        user.ID,
			Name:      user.Name,
			Surname:   user.Surname,
			Email:     user.Email,
			Embedding: user.Embedding,
		})
	}

	WriteSuccess(w, http.StatusOK, result)
}

// UpdateUserBody — JSON-тело запроса PUT /users/{id}.
type UpdateUserBody struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

// parsePathID извлекает числовой {id} из пути.
func parsePathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(raw, e.ErrInvalidUserID)
	}

	return id, nil
}
