package category

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"award-voting/internal/platform/apperr"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all categories ordered by display_order ascending. There is
// no caching here; voters re-read the list on every page load.
func (s *Service) List(ctx context.Context) ([]Category, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Unavailable("store_unavailable", "could not load categories", err)
	}
	return cats, nil
}

func (s *Service) Create(ctx context.Context, title string, alternatives []string) (*Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.BadRequest("invalid_input", "title required", nil)
	}

	cleaned := make([]string, 0, len(alternatives))
	seen := make(map[string]bool, len(alternatives))
	for _, alt := range alternatives {
		alt = strings.TrimSpace(alt)
		if alt == "" || seen[alt] {
			continue
		}
		seen[alt] = true
		cleaned = append(cleaned, alt)
	}
	if len(cleaned) == 0 {
		return nil, apperr.BadRequest("invalid_input", "at least one alternative required", nil)
	}

	maxOrder, err := s.repo.MaxDisplayOrder(ctx)
	if err != nil {
		return nil, apperr.Unavailable("store_unavailable", "could not load categories", err)
	}

	c := &Category{
		ID:           uuid.New(),
		Title:        title,
		Alternatives: cleaned,
		DisplayOrder: maxOrder + 1,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, apperr.Unavailable("store_unavailable", "could not create category", err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
