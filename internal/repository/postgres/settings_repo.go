package postgres

import (
	"context"
	"database/sql"
)

type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) GetBool(ctx context.Context, key string) (bool, error) {
	var value bool
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = $1`, key,
	).Scan(&value)
	return value, err
}

func (r *SettingsRepo) SetBool(ctx context.Context, key string, value bool) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO settings (key, value)
        VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE
        SET value = EXCLUDED.value, updated_at = now()
    `, key, value)
	return err
}
