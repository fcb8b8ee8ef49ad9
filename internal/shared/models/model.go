// Package models содержит плоские модели HTTP API, общие для сервера и CLI-клиента.
package models

import "time"

// User — публичные поля пользователя, которые сервер отдаёт клиенту.
//
// Хэш пароля сюда не попадает никогда: структура вообще не имеет такого поля,
// поэтому случайно сериализовать его невозможно.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Note — заметка пользователя, как она ходит по HTTP API.
//
// Поля:
//   - ID: уникальный идентификатор заметки (UUID в виде строки)
//   - OwnerID: идентификатор владельца; пустая строка у legacy-заметок,
//     созданных до появления владельцев (такие заметки недоступны никому)
//   - Title/Content: пользовательские данные
//   - CreatedAt/UpdatedAt: серверные отметки времени
type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse — ответ эндпоинтов регистрации и входа.
//
// Используется в:
//
//	POST /auth/register
//	POST /auth/login
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// ProfileResponse — ответ эндпоинта профиля текущего пользователя.
//
// Используется в:
//
//	GET /auth/profile
type ProfileResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// MessageResponse — простой ответ с текстом (например, после удаления заметки).
type MessageResponse struct {
	Message string `json:"message"`
}
