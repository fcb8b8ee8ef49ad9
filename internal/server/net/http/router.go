// Package http реализует маршрутизацию HTTP-слоя сервера notes-keeper.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - выполняет проверку JWT access-токенов для защищённых путей.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/api"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты аутентификации /auth/register и /auth/login;
//   - middleware логирования для всех запросов и заглушку rate limit;
//   - группу защищённых JWT эндпоинтов: /auth/profile и CRUD /notes.
func NewRouter(h *api.Handler, sec config.SecurityConfig) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())
	// заглушка rate limit (пропускает всё, см. middleware.RateLimitMiddleware)
	r.Use(middleware.RateLimitMiddleware(sec.RateLimit))

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	// Публичные пути
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		// профиль защищён токеном, регистрация и логин — нет
		r.Group(func(r chi.Router) {
			r.Use(h.Verifier.AuthMiddleware())
			r.Get("/profile", h.Profile)
		})
	})
	// защищённые пути
	r.Group(func(r chi.Router) {
		// проверка access токена
		r.Use(h.Verifier.AuthMiddleware())
		// CRUD запросы для заметок
		r.Route("/notes", func(r chi.Router) {
			r.Post("/", h.CreateNote)       // создание заметки
			r.Get("/", h.ListNotes)         // все заметки caller, новые сверху
			r.Get("/{id}", h.GetNote)       // одна заметка, только владельцу
			r.Put("/{id}", h.UpdateNote)    // обновляем title/content по id
			r.Delete("/{id}", h.DeleteNote) // удаляем заметку по id
		})
	})

	return r
}
