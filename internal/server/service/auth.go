package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей
//   - аутентификация (логин)
//   - выпуск access токенов (30 дней, stateless — без серверных сессий)
//   - профиль текущего пользователя
type AuthService struct {
	users UsersRepo

	hasher string
	pass   crypto.Argon2Params
	bcrypt int
	jwt    crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		hasher: strings.ToLower(cfg.Password.Hasher),
		pass: crypto.Argon2Params{
			Time:      cfg.Password.Argon2.Time,
			MemoryKiB: cfg.Password.Argon2.MemoryKiB,
			Threads:   cfg.Password.Argon2.Threads,
			KeyLen:    cfg.Password.Argon2.KeyLen,
			SaltLen:   cfg.Password.Argon2.SaltLen,
		},
		bcrypt: cfg.Password.Bcrypt.Cost,
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// hashPassword хэширует пароль выбранным в конфиге алгоритмом.
func (s *AuthService) hashPassword(password string) (string, error) {
	if s.hasher == "bcrypt" {
		return crypto.HashPasswordBcrypt(password, s.bcrypt)
	}
	return crypto.HashPassword(password, s.pass)
}

// Register регистрирует нового пользователя и сразу выдаёт ему токен.
//
// Валидация:
//   - username, email, password, confirmPassword обязательны
//   - email должен быть валидным
//   - пароль длиной >= 8 символов
//   - password и confirmPassword должны совпадать
//
// Возвращает:
//   - созданного пользователя (без исходного пароля) и access токен
//   - ErrInvalidInput при некорректных данных
//   - ErrEmailTaken / ErrUsernameTaken, если уникальное поле занято
func (s *AuthService) Register(ctx context.Context, username, email, password, confirmPassword string) (models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	confirmPassword = strings.TrimSpace(confirmPassword)

	if username == "" || email == "" || password == "" || confirmPassword == "" {
		return models.User{}, "", serr.ErrInvalidInput
	}
	if !emailRe.MatchString(email) || len(password) < 8 {
		return models.User{}, "", serr.ErrInvalidInput
	}
	if password != confirmPassword {
		return models.User{}, "", serr.ErrInvalidInput
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return models.User{}, "", serr.ErrInternal
	}

	user, err := s.users.Create(ctx, username, email, hash)
	if err != nil {
		return models.User{}, "", err
	}

	token, err := crypto.NewAccessToken(user.ID.String(), s.jwt)
	if err != nil {
		return models.User{}, "", serr.ErrInternal
	}

	return user, token, nil
}

// Login аутентифицирует пользователя и выдаёт токен.
//
// Поведение:
//   - не раскрывает факт существования email: и "нет такого пользователя",
//     и "не тот пароль" дают одинаковую ErrInvalidCredentials
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return models.User{}, "", serr.ErrInvalidInput
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return models.User{}, "", serr.ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return models.User{}, "", serr.ErrInternal
	}
	if !ok {
		return models.User{}, "", serr.ErrInvalidCredentials
	}

	token, err := crypto.NewAccessToken(user.ID.String(), s.jwt)
	if err != nil {
		return models.User{}, "", serr.ErrInternal
	}

	return user, token, nil
}

// Profile возвращает пользователя по идентификатору из токена.
//
// Ошибки:
//   - ErrUnauthorized — callerID не парсится как UUID
//   - ErrNotFound — токен пережил аккаунт
func (s *AuthService) Profile(ctx context.Context, callerID string) (models.User, error) {
	id, err := uuid.Parse(callerID)
	if err != nil {
		return models.User{}, serr.ErrUnauthorized
	}
	return s.users.GetByID(ctx, id)
}
