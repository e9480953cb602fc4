package postgres

import (
	"context"
	"database/sql"

	"depdemo/internal/model"
	"depdemo/internal/repository"
)

// FetchPostgres is a PostgreSQL implementation of repository.FetchRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type FetchPostgres struct {
	db *sql.DB
}

// NewFetchPostgres creates a new FetchPostgres repository.
func NewFetchPostgres(db *sql.DB) *FetchPostgres {
	return &FetchPostgres{db: db}
}

var _ repository.FetchRepository = (*FetchPostgres)(nil)

// Create inserts a new fetch record row and returns the stored record.
func (r *FetchPostgres) Create(ctx context.Context, rec *model.FetchRecord) (*model.FetchRecord, error) {
	const q = `
		INSERT INTO fetch_records (id, url, status_code, size, content_type, latency_ms, storage_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, url, status_code, size, content_type, latency_ms, storage_path, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		rec.ID,
		rec.URL,
		rec.StatusCode,
		rec.Size,
		rec.ContentType,
		rec.LatencyMs,
		rec.StoragePath,
		rec.CreatedAt,
	)
	var out model.FetchRecord
	if err := row.Scan(
		&out.ID,
		&out.URL,
		&out.StatusCode,
		&out.Size,
		&out.ContentType,
		&out.LatencyMs,
		&out.StoragePath,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single record by its ID.
func (r *FetchPostgres) FindByID(ctx context.Context, id string) (*model.FetchRecord, error) {
	const q = `
		SELECT id, url, status_code, size, content_type, latency_ms, storage_path, created_at
		FROM fetch_records
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var rec model.FetchRecord
	if err := row.Scan(
		&rec.ID,
		&rec.URL,
		&rec.StatusCode,
		&rec.Size,
		&rec.ContentType,
		&rec.LatencyMs,
		&rec.StoragePath,
		&rec.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns records using LIMIT/OFFSET pagination and a total count.
func (r *FetchPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.FetchRecord], error) {
	// Count total rows
	const qCount = `SELECT COUNT(*) FROM fetch_records`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	// Fetch page
	const qList = `
		SELECT id, url, status_code, size, content_type, latency_ms, storage_path, created_at
		FROM fetch_records
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FetchRecord, 0)
	for rows.Next() {
		var rec model.FetchRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.URL,
			&rec.StatusCode,
			&rec.Size,
			&rec.ContentType,
			&rec.LatencyMs,
			&rec.StoragePath,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.FetchRecord]{
		Items: items,
		Total: total,
	}, nil
}
