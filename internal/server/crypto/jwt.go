// Package crypto содержит криптографические примитивы сервера notes-keeper.
//
// В частности, пакет отвечает за:
//   - генерацию, подпись и проверку JWT access-токенов;
//   - настройку параметров токенов (issuer, audience, TTL);
//   - хэширование и проверку паролей пользователей.
package crypto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	serr "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/errors"
)

// JWTConfig описывает параметры генерации JWT access-токена.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// AccessTTL — срок жизни access-токена (по умолчанию 30 дней).
	AccessTTL time.Duration
}

// NewAccessToken создаёт и подписывает JWT access-токен для пользователя.
//
// Токен содержит стандартные RegisteredClaims:
//   - iss (Issuer)
//   - aud (Audience)
//   - sub (userID)
//   - iat (IssuedAt)
//   - exp (ExpiresAt)
//
// Используется алгоритм подписи HS256.
// В случае ошибки подписи возвращается непустая ошибка.
func NewAccessToken(userID string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Audience:  []string{cfg.Audience},
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseAccessToken проверяет подпись и claims токена и возвращает userID.
//
// Проверки (stateless — никаких походов в БД):
//   - подпись HS256 ключом cfg.SigningKey;
//   - срок жизни (exp);
//   - issuer и audience, если заданы в конфиге;
//   - непустой subject.
//
// Все ошибки оборачивают ErrUnauthorized, чтобы api/middleware могли
// одинаково замапить их на 401, сохранив человекочитаемую причину.
func ParseAccessToken(tokenStr string, cfg JWTConfig) (string, error) {
	claims := &jwt.RegisteredClaims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("token expired: %w", serr.ErrUnauthorized)
		}
		return "", fmt.Errorf("invalid token: %w", serr.ErrUnauthorized)
	}

	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return "", fmt.Errorf("invalid token issuer: %w", serr.ErrUnauthorized)
	}

	if cfg.Audience != "" {
		ok := false
		for _, aud := range claims.Audience {
			if aud == cfg.Audience {
				ok = true
				break
			}
		}
		if !ok {
			return "", fmt.Errorf("invalid token audience: %w", serr.ErrUnauthorized)
		}
	}

	userID := strings.TrimSpace(claims.Subject)
	if userID == "" {
		return "", fmt.Errorf("invalid token subject: %w", serr.ErrUnauthorized)
	}
	return userID, nil
}
