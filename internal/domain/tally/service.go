package tally

import (
	"context"
	"time"

	"award-voting/internal/domain/ballot"
	"award-voting/internal/domain/category"
	"award-voting/internal/pagination"
)

// Cache is an optional read-through cache for whole dashboards. A nil
// Cache disables caching; category definitions are never cached.
type Cache interface {
	Get(ctx context.Context, w Window) ([]Result, bool)
	Set(ctx context.Context, w Window, results []Result)
}

type Service struct {
	categories *category.Service
	selections ballot.Repository
	cache      Cache
	pageSize   int
	now        func() time.Time
}

func NewService(categories *category.Service, selections ballot.Repository, cache Cache, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	return &Service{
		categories: categories,
		selections: selections,
		cache:      cache,
		pageSize:   pageSize,
		now:        time.Now,
	}
}

// Dashboard produces one Result per category for the given window. Any
// retrieval failure aborts the whole dashboard; no partial tally is ever
// returned.
func (s *Service) Dashboard(ctx context.Context, w Window) ([]Result, error) {
	if s.cache != nil {
		if results, ok := s.cache.Get(ctx, w); ok {
			return results, nil
		}
	}

	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	since := w.Since(s.now())

	results := make([]Result, 0, len(cats))
	for _, cat := range cats {
		filter := ballot.Filter{CategoryID: cat.ID, Since: since}
		rows, err := pagination.FetchAll(ctx, func(ctx context.Context, offset, limit int) ([]ballot.Selection, error) {
			return s.selections.ListPage(ctx, filter, offset, limit)
		}, s.pageSize)
		if err != nil {
			return nil, err
		}
		results = append(results, Aggregate(cat, rows))
	}

	if s.cache != nil {
		s.cache.Set(ctx, w, results)
	}
	return results, nil
}

// Export retrieves the full, window-filtered selection list across all
// categories, in store order, for CSV encoding.
func (s *Service) Export(ctx context.Context, w Window) ([]ballot.Selection, error) {
	filter := ballot.Filter{Since: w.Since(s.now())}
	return pagination.FetchAll(ctx, func(ctx context.Context, offset, limit int) ([]ballot.Selection, error) {
		return s.selections.ListPage(ctx, filter, offset, limit)
	}, s.pageSize)
}
