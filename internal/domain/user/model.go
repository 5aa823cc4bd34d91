package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Repository persists identities and their role grants. Role membership
// lives in its own table keyed by user ID, not on the user row.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
	GrantRole(ctx context.Context, userID uuid.UUID, role string) error
}
