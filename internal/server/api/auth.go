// HTTP-хендлеры регистрации, логина и профиля
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/errors"
	sharedmodels "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/models"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна, в ответе токен и публичные поля пользователя;
//   - 400 Bad Request: неверный JSON, невалидные входные данные или занятый email/username
//     (в сообщении говорим, какое именно поле занято);
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Register user
// @Description  Creates a new user and returns a fresh access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Register request"
// @Success      201 {object} sharedmodels.AuthResponse
// @Failure      400 {object} ErrorResponse "Invalid input or duplicate email/username"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	user, token, err := h.Svc.Auth.Register(r.Context(), req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput),
			errors.Is(err, serr.ErrEmailTaken),
			errors.Is(err, serr.ErrUsernameTaken),
			errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Errorw("register failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, sharedmodels.AuthResponse{
		Message: "user registered successfully",
		Token:   token,
		User:    toUser(user),
	})
}

// Login обрабатывает вход пользователя и выдачу токена.
//
// Ответы:
//   - 200 OK: успешный вход;
//   - 400 Bad Request: неверный JSON или пустые поля;
//   - 401 Unauthorized: неверные учётные данные (текст одинаковый
//     для несуществующего email и неверного пароля);
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Login
// @Description  Authenticates a user and returns a fresh access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} sharedmodels.AuthResponse
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Invalid credentials"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	user, token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, err)
		default:
			h.Log.Logger.Sugar().Errorw("login failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, sharedmodels.AuthResponse{
		Message: "login successful",
		Token:   token,
		User:    toUser(user),
	})
}

// Profile возвращает публичные поля текущего пользователя.
//
// Пользователь определяется по JWT-токену (middleware).
//
// Ответы:
//   - 200 OK: профиль найден;
//   - 401 Unauthorized: запрос без личности;
//   - 404 Not Found: токен валиден, но пользователя уже нет;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Get profile
// @Description  Returns the authenticated user's public fields.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} sharedmodels.ProfileResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/profile [get]
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	user, err := h.Svc.Auth.Profile(r.Context(), callerID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrUnauthorized):
			WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("profile failed", "error", err, "user_id", callerID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, sharedmodels.ProfileResponse{
		Message: "profile fetched successfully",
		User:    toUser(user),
	})
}
