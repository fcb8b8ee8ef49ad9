package tests

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/config"
	crypt "github.com/IvanChernomyrdin/go-notes-keeper/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/models"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/service"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/errors"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "noteskeeper",
			Audience:  "noteskeeper-cli",
			AccessTTL: 30 * 24 * time.Hour,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456", // >= 32
			},
		},
		Password: config.PasswordConfig{
			Hasher: "argon2id",
			Argon2: config.Argon2Config{
				Time:      1,
				MemoryKiB: 32 * 1024,
				Threads:   1,
				KeyLen:    32,
				SaltLen:   16,
			},
		},
		Notes: config.NotesConfig{
			MaxTitleBytes:   256,
			MaxContentBytes: 64 * 1024,
		},
	}
}

// создаём сервис
func newAuthService(t *testing.T) (*service.AuthService, *mocks.MockUsersRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := mocks.NewMockUsersRepo(ctrl)

	svc := service.NewAuthService(users, testConfig())
	return svc, users
}

func argonParams() crypt.Argon2Params {
	cfg := testConfig()
	return crypt.Argon2Params{
		Time:      cfg.Password.Argon2.Time,
		MemoryKiB: cfg.Password.Argon2.MemoryKiB,
		Threads:   cfg.Password.Argon2.Threads,
		KeyLen:    cfg.Password.Argon2.KeyLen,
		SaltLen:   cfg.Password.Argon2.SaltLen,
	}
}

// Успешная регистрация: пароль хэшируется, токен выдаётся сразу
func TestAuthService_Register_OK(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	userID := uuid.New()

	users.EXPECT().
		Create(gomock.Any(), "ivan", "test@mail.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, username, email, hash string) (models.User, error) {
			require.NotEmpty(t, hash)
			require.NotEqual(t, "strongpassword", hash) // в БД не уходит plaintext

			ok, err := crypt.VerifyPassword("strongpassword", hash)
			require.NoError(t, err)
			require.True(t, ok)

			return models.User{
				ID:           userID,
				Username:     username,
				Email:        email,
				PasswordHash: hash,
				CreatedAt:    time.Now(),
			}, nil
		})

	user, token, err := svc.Register(ctx, "ivan", "test@mail.com", "strongpassword", "strongpassword")
	require.NoError(t, err)
	require.Equal(t, userID, user.ID)
	require.NotEmpty(t, token)

	// токен должен валидироваться и указывать на нового пользователя
	cfg := testConfig()
	sub, err := crypt.ParseAccessToken(token, crypt.JWTConfig{
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		SigningKey: cfg.Auth.JWT.SigningKey,
	})
	require.NoError(t, err)
	require.Equal(t, userID.String(), sub)
}

// Email нормализуется: пробелы и регистр не создают второго пользователя
func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		Create(gomock.Any(), "ivan", "test@mail.com", gomock.Any()).
		Return(models.User{ID: uuid.New()}, nil)

	_, _, err := svc.Register(ctx, "ivan", "  Test@Mail.Com ", "strongpassword", "strongpassword")
	require.NoError(t, err)
}

// Валидация входных данных
func TestAuthService_Register_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	cases := []struct {
		name     string
		username string
		email    string
		password string
		confirm  string
	}{
		{"empty username", "", "test@mail.com", "strongpassword", "strongpassword"},
		{"empty email", "ivan", "", "strongpassword", "strongpassword"},
		{"bad email", "ivan", "not-an-email", "strongpassword", "strongpassword"},
		{"short password", "ivan", "test@mail.com", "short", "short"},
		{"password mismatch", "ivan", "test@mail.com", "strongpassword", "otherpassword"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, c.username, c.email, c.password, c.confirm)
			require.ErrorIs(t, err, serr.ErrInvalidInput)
		})
	}
}

// Занятый email — ошибка репозитория уходит наверх как есть
func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, serr.ErrEmailTaken)

	_, _, err := svc.Register(ctx, "ivan", "test@mail.com", "strongpassword", "strongpassword")
	require.ErrorIs(t, err, serr.ErrEmailTaken)
}

// Успешный вход
func TestAuthService_Login_OK(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	userID := uuid.New()
	password := "strongpassword"

	hash, err := crypt.HashPassword(password, argonParams())
	require.NoError(t, err)

	users.EXPECT().
		GetByEmail(ctx, "test@mail.com").
		Return(models.User{
			ID:           userID,
			Username:     "ivan",
			Email:        "test@mail.com",
			PasswordHash: hash,
		}, nil)

	user, token, err := svc.Login(ctx, "test@mail.com", password)
	require.NoError(t, err)
	require.Equal(t, userID, user.ID)
	require.NotEmpty(t, token)
}

// Нет такого пользователя: та же ошибка, что и при неверном пароле
func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	users.EXPECT().
		GetByEmail(ctx, "test@mail.com").
		Return(models.User{}, serr.ErrNotFound)

	_, _, err := svc.Login(ctx, "test@mail.com", "strongpassword")
	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
}

// Неверный пароль: текстуально неотличим от несуществующего email
func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	hash, err := crypt.HashPassword("correct-password", argonParams())
	require.NoError(t, err)

	users.EXPECT().
		GetByEmail(ctx, "test@mail.com").
		Return(models.User{ID: uuid.New(), PasswordHash: hash}, nil)

	_, _, err = svc.Login(ctx, "test@mail.com", "wrong-password")
	require.ErrorIs(t, err, serr.ErrInvalidCredentials)
}

// Пустые поля
func TestAuthService_Login_InvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, _, err := svc.Login(ctx, "", "password")
	require.ErrorIs(t, err, serr.ErrInvalidInput)

	_, _, err = svc.Login(ctx, "test@mail.com", "")
	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

// Профиль
func TestAuthService_Profile_OK(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	userID := uuid.New()

	users.EXPECT().
		GetByID(ctx, userID).
		Return(models.User{ID: userID, Username: "ivan"}, nil)

	user, err := svc.Profile(ctx, userID.String())
	require.NoError(t, err)
	require.Equal(t, "ivan", user.Username)
}

// Subject из токена не UUID
func TestAuthService_Profile_BadCallerID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.Profile(ctx, "not-a-uuid")
	require.ErrorIs(t, err, serr.ErrUnauthorized)
}

// Токен пережил аккаунт
func TestAuthService_Profile_UserGone(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService(t)

	userID := uuid.New()

	users.EXPECT().
		GetByID(ctx, userID).
		Return(models.User{}, serr.ErrNotFound)

	_, err := svc.Profile(ctx, userID.String())
	require.ErrorIs(t, err, serr.ErrNotFound)
}
