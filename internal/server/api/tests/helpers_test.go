package tests

import (
	"testing"
	"time"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/config"
	crypt "github.com/IvanChernomyrdin/go-notes-keeper/internal/server/crypto"
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

// hashForTest хэширует пароль теми же параметрами, что и сервис
func hashForTest(t *testing.T, password string) string {
	t.Helper()

	cfg := testConfig()
	hash, err := crypt.HashPassword(password, crypt.Argon2Params{
		Time:      cfg.Password.Argon2.Time,
		MemoryKiB: cfg.Password.Argon2.MemoryKiB,
		Threads:   cfg.Password.Argon2.Threads,
		KeyLen:    cfg.Password.Argon2.KeyLen,
		SaltLen:   cfg.Password.Argon2.SaltLen,
	})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}
