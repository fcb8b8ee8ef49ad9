// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, пароли не совпадают и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные. Текст один и для "нет такого email",
	// и для "не тот пароль" — не палим что именно не совпало
	ErrInvalidCredentials = errors.New("invalid email or password")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован (нет токена или токен невалиден)
	ErrUnauthorized = errors.New("unauthorized")
	// Аутентифицирован, но не владелец заметки
	ErrForbidden = errors.New("forbidden")
	// Ресурс уже существует
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
	// неожидаемая ошибка
	ErrUnexpectedError = errors.New("unexpected error")
)

// только для регистрации: в отличие от логина тут говорим,
// какое именно уникальное поле занято
var (
	ErrEmailTaken    = errors.New("email already exists")
	ErrUsernameTaken = errors.New("username already exists")
)
