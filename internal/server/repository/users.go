// Package repository содержит реализации слоя доступа к данным (Repository layer).
//
// Репозитории инкапсулируют работу с БД и не содержат бизнес-логики.
// Все ошибки приводятся к доменным ошибкам из internal/shared/errors.
package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-notes-keeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/errors"
	"github.com/google/uuid"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create сохраняет нового пользователя.
//
// При нарушении уникальности (23505) по имени констрейнта определяем,
// какое именно поле занято: email или username. Это осознанная асимметрия
// с логином — при регистрации сообщение информативное.
func (r *UsersRepository) Create(ctx context.Context, username, email, passwordHash string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1,$2,$3)
		 RETURNING id, created_at`,
		username, email, passwordHash,
	).Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				switch {
				case strings.Contains(pgErr.ConstraintName, "email"):
					return models.User{}, serr.ErrEmailTaken
				case strings.Contains(pgErr.ConstraintName, "username"):
					return models.User{}, serr.ErrUsernameTaken
				default:
					return models.User{}, serr.ErrAlreadyExists
				}
			}
		}
		return models.User{}, serr.ErrInternal
	}

	u.Username = username
	u.Email = email
	u.PasswordHash = passwordHash
	return u, nil
}

// GetByEmail возвращает пользователя по email, включая хэш пароля.
//
// Используется при логине.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at
		   FROM users
		  WHERE email=$1`,
		email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}

// GetByID возвращает пользователя по идентификатору.
//
// Используется для профиля: токен мог пережить аккаунт.
func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at
		   FROM users
		  WHERE id=$1`,
		id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, serr.ErrNotFound
		}
		return models.User{}, serr.ErrInternal
	}

	return u, nil
}
