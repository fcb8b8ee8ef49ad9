// Package service содержит бизнес-логику приложения (notes-keeper).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
	Notes NotesRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Notes *NotesService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хэширования пароля и JWT)
// и NotesService (лимиты на размер заметок).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, cfg),
		Notes: NewNotesService(repos.Notes, cfg.Notes),
	}
}

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// UsersRepo — репозиторий пользователей (нужен для register/login/profile).
type UsersRepo interface {
	Create(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

// NotesRepo — репозиторий заметок (CRUD без проверки владельца,
// владельца проверяет NotesService).
type NotesRepo interface {
	Create(ctx context.Context, ownerID uuid.UUID, title, content string) (models.Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Note, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Note, error)
	Update(ctx context.Context, id uuid.UUID, title, content string) (models.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
