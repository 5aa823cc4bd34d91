package ballot

import (
	"context"
	"time"

	"github.com/google/uuid"

	"award-voting/internal/domain/category"
)

// Ballot is one voter's in-memory mapping of category ID to the selected
// alternative. It only exists for the duration of a single submission.
type Ballot map[uuid.UUID]string

// Selection is one persisted row recording a single category's outcome
// within a ballot. Rows are append-only; the category title is a snapshot
// taken at submission time.
type Selection struct {
	ID                  uuid.UUID `json:"id"`
	IPAddress           string    `json:"ip_address"`
	CategoryID          uuid.UUID `json:"category_id"`
	CategoryTitle       string    `json:"category_title"`
	SelectedAlternative string    `json:"selected_alternative"`
	CreatedAt           time.Time `json:"created_at"`
}

// Filter narrows a selection read. Zero values mean "no constraint".
type Filter struct {
	CategoryID uuid.UUID
	Since      time.Time
}

type Repository interface {
	// BulkInsert writes all rows of one ballot in a single statement.
	BulkInsert(ctx context.Context, rows []Selection) error
	// ListPage returns at most limit rows matching the filter starting at
	// offset, ordered by created_at descending.
	ListPage(ctx context.Context, f Filter, offset, limit int) ([]Selection, error)
}

// NewSelections expands a complete ballot into one row per category,
// sharing the resolved address and a single submission timestamp.
func NewSelections(categories []category.Category, b Ballot, ip string, at time.Time) []Selection {
	rows := make([]Selection, 0, len(categories))
	for _, cat := range categories {
		rows = append(rows, Selection{
			ID:                  uuid.New(),
			IPAddress:           ip,
			CategoryID:          cat.ID,
			CategoryTitle:       cat.Title,
			SelectedAlternative: b[cat.ID],
			CreatedAt:           at,
		})
	}
	return rows
}
