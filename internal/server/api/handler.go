// Package api реализует HTTP-слой сервера notes-keeper.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - преобразование серверных моделей в публичные DTO (internal/shared/models).
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/models"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/service"
	sharedmodels "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/models"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки JWT и middleware авторизации.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер,
// verifier — JWT-проверка и middleware авторизации.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// ErrorResponse стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError — вспомогательная функция вывода ошибки.
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: err.Error(),
	})
}

// WriteJSON сериализует v в тело ответа с заданным статусом.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// toUser конвертирует серверную модель пользователя в публичный DTO.
//
// Хэш пароля теряется на этом шаге — в DTO для него нет поля.
func toUser(u models.User) sharedmodels.User {
	return sharedmodels.User{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// toNote конвертирует серверную модель заметки в публичный DTO.
func toNote(n models.Note) sharedmodels.Note {
	out := sharedmodels.Note{
		ID:        n.ID.String(),
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
	if n.OwnerID != nil {
		out.OwnerID = n.OwnerID.String()
	}
	return out
}
