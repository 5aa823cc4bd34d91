package category

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"award-voting/internal/platform/apperr"
)

type memoryCategoryRepo struct {
	mu      sync.Mutex
	cats    []Category
	listErr error
}

func (r *memoryCategoryRepo) List(ctx context.Context) ([]Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]Category, len(r.cats))
	copy(out, r.cats)
	return out, nil
}

func (r *memoryCategoryRepo) Create(ctx context.Context, c *Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.CreatedAt = time.Now()
	r.cats = append(r.cats, *c)
	return nil
}

func (r *memoryCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.cats {
		if c.ID == id {
			r.cats = append(r.cats[:i], r.cats[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r *memoryCategoryRepo) MaxDisplayOrder(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := 0
	for _, c := range r.cats {
		if c.DisplayOrder > max {
			max = c.DisplayOrder
		}
	}
	return max, nil
}

func TestCreateNormalizesAlternatives(t *testing.T) {
	repo := &memoryCategoryRepo{}
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), "  Best Artist  ", []string{" Ana ", "Bia", "", "Ana"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.Title != "Best Artist" {
		t.Fatalf("title not trimmed: %q", c.Title)
	}
	if len(c.Alternatives) != 2 || c.Alternatives[0] != "Ana" || c.Alternatives[1] != "Bia" {
		t.Fatalf("alternatives not cleaned: %v", c.Alternatives)
	}
	if c.DisplayOrder != 1 {
		t.Fatalf("first category should get order 1, got %d", c.DisplayOrder)
	}

	second, err := svc.Create(context.Background(), "Best Song", []string{"X"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.DisplayOrder != 2 {
		t.Fatalf("display order should append, got %d", second.DisplayOrder)
	}
}

func TestCreateRejectsEmptyInput(t *testing.T) {
	svc := NewService(&memoryCategoryRepo{})

	if _, err := svc.Create(context.Background(), "", []string{"A"}); err == nil {
		t.Fatalf("empty title should be rejected")
	}
	if _, err := svc.Create(context.Background(), "Best Artist", []string{" ", ""}); err == nil {
		t.Fatalf("no usable alternatives should be rejected")
	}
}

func TestListStoreFailure(t *testing.T) {
	repo := &memoryCategoryRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo)

	_, err := svc.List(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	var appErr *apperr.AppError
	if !errors.As(err, &appErr) || appErr.Code != "store_unavailable" {
		t.Fatalf("expected store_unavailable, got %v", err)
	}
}
