package tally

import (
	"award-voting/internal/domain/ballot"
	"award-voting/internal/domain/category"
	"github.com/google/uuid"
)

// AlternativeCount is one bar of a category's result chart.
type AlternativeCount struct {
	Alternative string `json:"alternative"`
	Votes       int64  `json:"votes"`
}

// Result holds the per-alternative counts for one category. Counts keeps
// the category's declared alternative order; Total is the number of
// selections actually counted, which can be lower than the number of rows
// retrieved when stale values were dropped.
type Result struct {
	CategoryID    uuid.UUID          `json:"category_id"`
	CategoryTitle string             `json:"category_title"`
	Counts        []AlternativeCount `json:"counts"`
	Total         int64              `json:"total"`
}

// Aggregate folds already-filtered selection rows into per-alternative
// counts. Every declared alternative starts at zero so that alternatives
// without votes still appear. A selection whose value is not declared by
// the category is silently dropped; it is neither counted nor an error.
func Aggregate(cat category.Category, selections []ballot.Selection) Result {
	index := make(map[string]int, len(cat.Alternatives))
	counts := make([]AlternativeCount, len(cat.Alternatives))
	for i, alt := range cat.Alternatives {
		index[alt] = i
		counts[i] = AlternativeCount{Alternative: alt}
	}

	var total int64
	for _, sel := range selections {
		i, ok := index[sel.SelectedAlternative]
		if !ok {
			continue
		}
		counts[i].Votes++
		total++
	}

	return Result{
		CategoryID:    cat.ID,
		CategoryTitle: cat.Title,
		Counts:        counts,
		Total:         total,
	}
}
