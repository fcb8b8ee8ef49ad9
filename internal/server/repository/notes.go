package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/errors"
)

// NotesRepository реализует доступ к хранилищу заметок (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики:
// проверку владельца делает сервисный слой.
type NotesRepository struct {
	db *sql.DB
}

// NewNotesRepository создаёт новый экземпляр NotesRepository.
func NewNotesRepository(db *sql.DB) *NotesRepository {
	return &NotesRepository{db: db}
}

// scanOwner переводит user_id из БД в *uuid.UUID.
//
// NULL остаётся nil: это legacy-заметка без владельца.
func scanOwner(owner sql.NullString) *uuid.UUID {
	if !owner.Valid {
		return nil
	}
	id, err := uuid.Parse(owner.String)
	if err != nil {
		return nil
	}
	return &id
}

// Create сохраняет новую заметку с владельцем ownerID.
//
// Ошибки:
//   - ErrInternal — ошибка базы данных
func (r *NotesRepository) Create(ctx context.Context, ownerID uuid.UUID, title, content string) (models.Note, error) {
	var n models.Note

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO notes (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`,
		ownerID, title, content,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)

	if err != nil {
		return models.Note{}, serr.ErrInternal
	}

	owner := ownerID
	n.OwnerID = &owner
	n.Title = title
	n.Content = content
	return n, nil
}

// GetByID возвращает заметку по идентификатору вне зависимости от владельца.
//
// Ошибки:
//   - ErrNotFound — заметки с таким id нет
//   - ErrInternal — ошибка базы данных
func (r *NotesRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Note, error) {
	var (
		n     models.Note
		owner sql.NullString
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, content, created_at, updated_at
		  FROM notes
		 WHERE id=$1
	`, id).Scan(&n.ID, &owner, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Note{}, serr.ErrNotFound
		}
		return models.Note{}, serr.ErrInternal
	}

	n.OwnerID = scanOwner(owner)
	return n, nil
}

// ListByOwner возвращает все заметки пользователя, новые сверху.
//
// Legacy-заметки без владельца сюда не попадают: user_id IS NULL
// не равен ничьему идентификатору.
func (r *NotesRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, content, created_at, updated_at
		  FROM notes
		 WHERE user_id=$1
		 ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var (
			n     models.Note
			owner sql.NullString
		)
		if err := rows.Scan(&n.ID, &owner, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		n.OwnerID = scanOwner(owner)
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return notes, nil
}

// Update заменяет title и content заметки и возвращает обновлённую запись.
//
// Владелец не меняется никогда.
//
// Ошибки:
//   - ErrNotFound — заметки с таким id нет
//   - ErrInternal — ошибка базы данных
func (r *NotesRepository) Update(ctx context.Context, id uuid.UUID, title, content string) (models.Note, error) {
	var (
		n     models.Note
		owner sql.NullString
	)

	err := r.db.QueryRowContext(ctx, `
		UPDATE notes
		   SET title=$2,
		       content=$3,
		       updated_at=now()
		 WHERE id=$1
		 RETURNING id, user_id, title, content, created_at, updated_at
	`, id, title, content).Scan(&n.ID, &owner, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Note{}, serr.ErrNotFound
		}
		return models.Note{}, serr.ErrInternal
	}

	n.OwnerID = scanOwner(owner)
	return n, nil
}

// Delete удаляет заметку навсегда.
//
// Ошибки:
//   - ErrNotFound — заметки с таким id нет
//   - ErrInternal — ошибка базы данных
func (r *NotesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notes WHERE id=$1`,
		id,
	)
	if err != nil {
		return serr.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if affected == 0 {
		return serr.ErrNotFound
	}
	return nil
}
