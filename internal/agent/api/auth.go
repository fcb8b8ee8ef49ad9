// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация, вход и получение
// профиля текущего пользователя.
package api

import (
	sharedmodels "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/models"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
//
// Поля передаются в JSON формате в эндпоинт /auth/register.
// ConfirmPassword должен совпадать с Password — сервер проверяет совпадение.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest описывает тело запроса входа пользователя.
//
// Email и Password передаются в JSON формате в эндпоинт /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /auth/register и возвращает AuthResponse
// с access токеном и данными созданного пользователя.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Register(username, email, password, confirmPassword string) (sharedmodels.AuthResponse, error) {
	var resp sharedmodels.AuthResponse
	err := c.PostJSON("/auth/register", RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает access токен.
//
// Метод отправляет POST запрос на /auth/login и возвращает AuthResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (sharedmodels.AuthResponse, error) {
	var resp sharedmodels.AuthResponse
	err := c.PostJSON("/auth/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Profile запрашивает профиль текущего пользователя.
//
// Метод отправляет GET запрос на /auth/profile и использует accessToken
// для авторизации. В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Profile(accessToken string) (sharedmodels.ProfileResponse, error) {
	var resp sharedmodels.ProfileResponse
	err := c.GetJSON("/auth/profile", &resp, accessToken)
	return resp, err
}
