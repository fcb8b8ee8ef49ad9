package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/errors"
)

// NotesService реализует бизнес-логику работы с заметками пользователя.
//
// Сервис:
//   - валидирует входные данные и применяет лимиты (NotesConfig);
//   - проверяет владельца перед каждым чтением/изменением/удалением;
//   - не знает о HTTP и БД напрямую.
type NotesService struct {
	repo   NotesRepo
	policy config.NotesConfig
}

// NewNotesService создаёт новый NotesService.
func NewNotesService(repo NotesRepo, cfg config.NotesConfig) *NotesService {
	return &NotesService{
		repo:   repo,
		policy: cfg,
	}
}

// authorize проверяет, что заметкой владеет именно caller.
//
// Сравнение — строковое сравнение идентификаторов: owner приходит из БД
// и мог бы иметь другое представление, чем идентификатор из токена.
// Заметка без владельца (legacy, user_id IS NULL) не принадлежит никому,
// поэтому проверка для неё проваливается у любого caller.
func authorize(n models.Note, callerID string) error {
	if n.OwnerID == nil {
		return serr.ErrForbidden
	}
	if n.OwnerID.String() != callerID {
		return serr.ErrForbidden
	}
	return nil
}

// parseCaller переводит идентификатор из токена в UUID.
//
// Middleware гарантирует непустой subject, но не его формат.
func parseCaller(callerID string) (uuid.UUID, error) {
	id, err := uuid.Parse(callerID)
	if err != nil {
		return uuid.Nil, serr.ErrUnauthorized
	}
	return id, nil
}

// validate проверяет поля заметки против лимитов конфига.
func (s *NotesService) validate(title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return serr.ErrInvalidInput
	}
	if int64(len(title)) > s.policy.MaxTitleBytes {
		return serr.ErrInvalidInput
	}
	if int64(len(content)) > s.policy.MaxContentBytes {
		return serr.ErrInvalidInput
	}
	return nil
}

// List возвращает все заметки caller, новые сверху.
func (s *NotesService) List(ctx context.Context, callerID string) ([]models.Note, error) {
	owner, err := parseCaller(callerID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, owner)
}

// Get возвращает заметку по id, если она принадлежит caller.
//
// Ошибки:
//   - ErrNotFound — заметки нет
//   - ErrForbidden — заметка чужая или без владельца
func (s *NotesService) Get(ctx context.Context, callerID string, noteID uuid.UUID) (models.Note, error) {
	n, err := s.repo.GetByID(ctx, noteID)
	if err != nil {
		return models.Note{}, err
	}
	if err := authorize(n, callerID); err != nil {
		return models.Note{}, err
	}
	return n, nil
}

// Create создаёт новую заметку, владельцем становится caller.
//
// Ошибки:
//   - ErrInvalidInput — пустые поля или превышены лимиты
func (s *NotesService) Create(ctx context.Context, callerID, title, content string) (models.Note, error) {
	owner, err := parseCaller(callerID)
	if err != nil {
		return models.Note{}, err
	}
	if err := s.validate(title, content); err != nil {
		return models.Note{}, err
	}
	return s.repo.Create(ctx, owner, title, content)
}

// Update заменяет title и content заметки caller.
//
// Правила not-found/forbidden те же, что у Get: сначала читаем заметку,
// проверяем владельца и только потом пишем.
func (s *NotesService) Update(ctx context.Context, callerID string, noteID uuid.UUID, title, content string) (models.Note, error) {
	if err := s.validate(title, content); err != nil {
		return models.Note{}, err
	}

	n, err := s.repo.GetByID(ctx, noteID)
	if err != nil {
		return models.Note{}, err
	}
	if err := authorize(n, callerID); err != nil {
		return models.Note{}, err
	}

	return s.repo.Update(ctx, noteID, title, content)
}

// Delete удаляет заметку caller навсегда.
//
// Правила not-found/forbidden те же, что у Get.
func (s *NotesService) Delete(ctx context.Context, callerID string, noteID uuid.UUID) error {
	n, err := s.repo.GetByID(ctx, noteID)
	if err != nil {
		return err
	}
	if err := authorize(n, callerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, noteID)
}
