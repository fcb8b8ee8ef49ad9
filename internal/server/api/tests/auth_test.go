package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/api"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/models"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-notes-keeper/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/errors"
	sharedmodels "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/models"
	"github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/logger"
)

// NewTestHandler создаёт Handler с моками и конфигом через dependency injection
func NewTestHandler(t *testing.T) (*api.Handler, *svcmocks.MockUsersRepo, *svcmocks.MockNotesRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := svcmocks.NewMockUsersRepo(ctrl)
	notes := svcmocks.NewMockNotesRepo(ctrl)

	cfg := testConfig()

	svc := service.NewServices(service.Repositories{Users: users, Notes: notes}, cfg)

	verifier := middleware.NewJWTVerifier(cfg.Auth.JWT.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	log := logger.NewHTTPLogger()

	return api.NewHandler(svc, log, verifier), users, notes
}

func TestHandler_Register_BadJSON(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if rec.Body.String() == "" {
		t.Fatalf("expected error body, got empty")
	}
}

func TestHandler_Register_Success(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	email := "test@example.com"
	password := "StrongPass123"
	userID := uuid.New()

	users.EXPECT().
		Create(gomock.Any(), "ivan", email, gomock.Any()).
		DoAndReturn(func(ctx context.Context, username, gotEmail, gotHash string) (models.User, error) {
			if gotHash == "" {
				t.Fatalf("expected non-empty password hash")
			}
			if gotHash == password {
				t.Fatalf("plaintext password leaked to repository")
			}
			return models.User{ID: userID, Username: username, Email: gotEmail}, nil
		})

	body, _ := json.Marshal(api.RegisterRequest{
		Username:        "ivan",
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set(api.ContentType, api.JsonContentType)
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp sharedmodels.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected non-empty token")
	}
	if resp.User.ID != userID.String() {
		t.Fatalf("expected user id %s, got %s", userID, resp.User.ID)
	}

	// в теле ответа не должно быть ни пароля, ни хэша
	if bytes.Contains(rec.Body.Bytes(), []byte(password)) {
		t.Fatal("password leaked into response body")
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("password")) {
		t.Fatal("password field leaked into response body")
	}
}

// Занятый email: 400 и информативное сообщение
func TestHandler_Register_EmailTaken(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	users.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, serr.ErrEmailTaken)

	body, _ := json.Marshal(api.RegisterRequest{
		Username:        "ivan",
		Email:           "taken@example.com",
		Password:        "StrongPass123",
		ConfirmPassword: "StrongPass123",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var resp api.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error != serr.ErrEmailTaken.Error() {
		t.Fatalf("expected %q, got %q", serr.ErrEmailTaken.Error(), resp.Error)
	}
}

// Пароли не совпали
func TestHandler_Register_PasswordMismatch(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	body, _ := json.Marshal(api.RegisterRequest{
		Username:        "ivan",
		Email:           "test@example.com",
		Password:        "StrongPass123",
		ConfirmPassword: "OtherPass123",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_Login_Success(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	userID := uuid.New()
	password := "StrongPass123"
	hash := hashForTest(t, password)

	users.EXPECT().
		GetByEmail(gomock.Any(), "test@example.com").
		Return(models.User{ID: userID, Username: "ivan", Email: "test@example.com", PasswordHash: hash}, nil)

	body, _ := json.Marshal(api.LoginRequest{Email: "test@example.com", Password: password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp sharedmodels.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected non-empty token")
	}
}

// Неверные креды: 401 и одинаковый текст для обоих случаев
func TestHandler_Login_InvalidCredentials_SameMessage(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	// случай 1: email не существует
	users.EXPECT().
		GetByEmail(gomock.Any(), "unknown@example.com").
		Return(models.User{}, serr.ErrNotFound)

	body, _ := json.Marshal(api.LoginRequest{Email: "unknown@example.com", Password: "whatever123"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec1 := httptest.NewRecorder()
	h.Login(rec1, req)

	// случай 2: email есть, пароль не тот
	users.EXPECT().
		GetByEmail(gomock.Any(), "known@example.com").
		Return(models.User{ID: uuid.New(), PasswordHash: hashForTest(t, "correct-password")}, nil)

	body, _ = json.Marshal(api.LoginRequest{Email: "known@example.com", Password: "wrong-password"})
	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec2 := httptest.NewRecorder()
	h.Login(rec2, req)

	if rec1.Code != http.StatusUnauthorized || rec2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", rec1.Code, rec2.Code)
	}
	// тексты ошибок должны быть неотличимы
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("error messages differ: %q vs %q", rec1.Body.String(), rec2.Body.String())
	}
}

func TestHandler_Profile_Success(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	userID := uuid.New()

	users.EXPECT().
		GetByID(gomock.Any(), userID).
		Return(models.User{ID: userID, Username: "ivan", Email: "test@example.com"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	rec := httptest.NewRecorder()

	h.Profile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp sharedmodels.ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.User.Username != "ivan" {
		t.Fatalf("unexpected user: %+v", resp.User)
	}
}

// Без личности в контексте
func TestHandler_Profile_Unauthorized(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	rec := httptest.NewRecorder()

	h.Profile(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

// Токен пережил аккаунт
func TestHandler_Profile_UserGone(t *testing.T) {
	t.Parallel()

	h, users, _ := NewTestHandler(t)

	userID := uuid.New()

	users.EXPECT().
		GetByID(gomock.Any(), userID).
		Return(models.User{}, serr.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	rec := httptest.NewRecorder()

	h.Profile(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}
