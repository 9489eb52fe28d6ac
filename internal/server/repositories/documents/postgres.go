// Package documents provides a PostgreSQL-backed repository for the
// document store: JSON bodies keyed per collection, queryable by a
// top-level field.
package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx). Bodies are stored as jsonb so field queries stay
// in SQL.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, collection, key string, body []byte) error {
	query := `
		INSERT INTO documents (collection, key, body)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, key) DO UPDATE SET body = excluded.body
	`
	if _, err := r.db.ExecContext(ctx, query, collection, key, body); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, collection, key string) ([]byte, error) {
	query := `
		SELECT body FROM documents
		WHERE collection = $1 AND key = $2
	`
	var body []byte
	if err := r.db.QueryRowContext(ctx, query, collection, key).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return body, nil
}

func (r *PostgresRepository) QueryByField(ctx context.Context, collection, field, value string) ([][]byte, error) {
	query := `
		SELECT body FROM documents
		WHERE collection = $1 AND body->>$2 = $3
	`
	rows, err := r.db.QueryContext(ctx, query, collection, field, value)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result [][]byte
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		result = append(result, body)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate document rows: %w", err)
	}

	return result, nil
}
