package pagination

import (
	"context"
	"fmt"
)

// DefaultPageSize matches the row cap the storage query interface imposes
// on any single read.
const DefaultPageSize = 1000

// PageFunc returns at most limit rows starting at offset.
type PageFunc[T any] func(ctx context.Context, offset, limit int) ([]T, error)

// FetchAll drains an unbounded result set through successive fixed-size
// pages issued sequentially, preserving store order. The sole termination
// condition is a page returning fewer than pageSize rows, so a result set
// of exactly k*pageSize rows costs k+1 round trips. The first page error
// aborts the whole retrieval; no partial result is returned.
func FetchAll[T any](ctx context.Context, fetch PageFunc[T], pageSize int) ([]T, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	var all []T
	for page := 0; ; page++ {
		rows, err := fetch(ctx, page*pageSize, pageSize)
		if err != nil {
			return nil, fmt.Errorf("retrieval failed at page %d: %w", page, err)
		}
		all = append(all, rows...)
		if len(rows) < pageSize {
			return all, nil
		}
	}
}
