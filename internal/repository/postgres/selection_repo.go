package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"award-voting/internal/domain/ballot"
)

type SelectionRepo struct {
	db *sql.DB
}

func NewSelectionRepo(db *sql.DB) *SelectionRepo {
	return &SelectionRepo{db: db}
}

// BulkInsert writes every row of one ballot with a single multi-row
// statement, so a ballot either has all its rows or none when the write
// fails outright.
func (r *SelectionRepo) BulkInsert(ctx context.Context, rows []ballot.Selection) error {
	if len(rows) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO votes (id, ip_address, category_id, category_title, selected_alternative, created_at) VALUES `)
	args := make([]any, 0, len(rows)*6)
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 6
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args,
			row.ID, row.IPAddress, row.CategoryID,
			row.CategoryTitle, row.SelectedAlternative, row.CreatedAt,
		)
	}

	_, err := r.db.ExecContext(ctx, sb.String(), args...)
	return err
}

// ListPage returns at most limit rows starting at offset, newest first.
func (r *SelectionRepo) ListPage(ctx context.Context, f ballot.Filter, offset, limit int) ([]ballot.Selection, error) {
	query := `
        SELECT id, ip_address, category_id, category_title, selected_alternative, created_at
        FROM votes
    `
	var conds []string
	var args []any

	if f.CategoryID != uuid.Nil {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if !f.Since.IsZero() {
		args = append(args, f.Since)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []ballot.Selection
	for rows.Next() {
		var s ballot.Selection
		if err := rows.Scan(&s.ID, &s.IPAddress, &s.CategoryID,
			&s.CategoryTitle, &s.SelectedAlternative, &s.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}
