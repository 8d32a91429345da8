package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const (
	queryLoadSnapshot = `SELECT value FROM snapshots WHERE key = $1`
	querySaveSnapshot = `INSERT INTO snapshots (key, value, updated_at) VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

type postgresStore struct {
	db *sqlx.DB
}

// NewPostgres stores snapshots in the snapshots table created by the migrations.
func NewPostgres(db *sqlx.DB) Store {
	return &postgresStore{db: db}
}

func (p *postgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte

	err := p.db.GetContext(ctx, &value, queryLoadSnapshot, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return value, nil
}

func (p *postgresStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := p.db.ExecContext(ctx, querySaveSnapshot, key, string(value))

	return err
}
