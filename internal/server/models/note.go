// Серверная модель заметки
package models

import (
	"time"

	"github.com/google/uuid"
)

// Note — заметка, как она хранится в БД.
//
// OwnerID — указатель: у legacy-заметок, созданных до появления владельцев,
// user_id в базе NULL. Такая заметка не принадлежит никому, и проверка
// владельца для неё всегда проваливается.
type Note struct {
	ID        uuid.UUID
	OwnerID   *uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
