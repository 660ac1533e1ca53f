package http

import (
	_ "github.com/DRSN-tech/voice-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/voice-backend/internal/usecase"
	"github.com/DRSN-tech/voice-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(userUC usecase.UserUC, verificationUC usecase.VerificationUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	userHandler := NewUserHandler(userUC, verificationUC, r.logger)
	audioHandler := NewAudioHandler(verificationUC, r.logger)

	registerUserRoutes(r.router, userHandler)
	registerAudioRoutes(r.router, audioHandler)
}

func registerUserRoutes(router chi.Router, userHandler *UserHandler) {
	router.Route("/users", func(u chi.Router) {
		u.Post("/", userHandler.registerNewUser)
		u.Get("/", userHandler.listUsers)
		u.Get("/{id}", userHandler.getUser)
		u.Put("/{id}", userHandler.updateUser)
		u.Delete("/{id}", userHandler.deleteUser)
	})

	router.Get("/users_with_embeddings", userHandler.listUsersWithEmbeddings)
}

func registerAudioRoutes(router chi.Router, audioHandler *AudioHandler) {
	router.Route("/audio", func(a chi.Router) {
		a.Post("/process", audioHandler.processAudio)
		a.Post("/compare", audioHandler.compareAudio)
	})
}
