package category

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Category is one votable question with its ordered alternatives.
// Alternatives order matters for display and for the ordinal keys of the
// webhook payload, not for tallying.
type Category struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Alternatives []string  `json:"alternatives"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	MaxDisplayOrder(ctx context.Context) (int, error)
}
