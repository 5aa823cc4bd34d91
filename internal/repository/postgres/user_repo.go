package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"award-voting/internal/domain/user"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u := &user.User{}
	err := r.db.QueryRowContext(ctx, `
        SELECT id, email, password_hash, created_at
        FROM users WHERE email = $1
    `, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return r.db.QueryRowContext(ctx, `
        INSERT INTO users (id, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING created_at
    `, u.ID, u.Email, u.PasswordHash).Scan(&u.CreatedAt)
}

func (r *UserRepo) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2
        )
    `, userID, role).Scan(&exists)
	return exists, err
}

// GrantRole is an idempotent upsert: a grant already held is not an error.
func (r *UserRepo) GrantRole(ctx context.Context, userID uuid.UUID, role string) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO user_roles (user_id, role)
        VALUES ($1, $2)
        ON CONFLICT (user_id, role) DO NOTHING
    `, userID, role)
	if isUniqueViolation(err) {
		return nil
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
