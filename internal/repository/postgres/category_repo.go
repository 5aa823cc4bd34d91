package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"award-voting/internal/domain/category"
)

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) List(ctx context.Context) ([]category.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, title, alternatives, display_order, created_at
        FROM categories
        ORDER BY display_order ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []category.Category
	for rows.Next() {
		var c category.Category
		var alts []byte
		if err := rows.Scan(&c.ID, &c.Title, &alts, &c.DisplayOrder, &c.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(alts, &c.Alternatives); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *CategoryRepo) Create(ctx context.Context, c *category.Category) error {
	alts, err := json.Marshal(c.Alternatives)
	if err != nil {
		return err
	}
	return r.db.QueryRowContext(ctx, `
        INSERT INTO categories (id, title, alternatives, display_order)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at
    `, c.ID, c.Title, alts, c.DisplayOrder).Scan(&c.CreatedAt)
}

func (r *CategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CategoryRepo) MaxDisplayOrder(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(display_order), 0) FROM categories`,
	).Scan(&max)
	return max, err
}
