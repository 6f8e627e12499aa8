package db

import (
	"context"
	"time"
)

const createRender = `-- name: CreateRender :exec
INSERT INTO renders (id, seed, width, height, algorithm, output_dir, duration_ms, config, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateRenderParams struct {
	ID         string
	Seed       int64
	Width      int64
	Height     int64
	Algorithm  string
	OutputDir  string
	DurationMs int64
	Config     string
	CreatedAt  time.Time
}

func (q *Queries) CreateRender(ctx context.Context, arg CreateRenderParams) error {
	_, err := q.db.ExecContext(ctx, createRender,
		arg.ID,
		arg.Seed,
		arg.Width,
		arg.Height,
		arg.Algorithm,
		arg.OutputDir,
		arg.DurationMs,
		arg.Config,
		arg.CreatedAt,
	)
	return err
}

const getRender = `-- name: GetRender :one
SELECT id, seed, width, height, algorithm, output_dir, duration_ms, config, created_at
FROM renders
WHERE id = ?
`

func (q *Queries) GetRender(ctx context.Context, id string) (Render, error) {
	row := q.db.QueryRowContext(ctx, getRender, id)
	var i Render
	err := row.Scan(
		&i.ID,
		&i.Seed,
		&i.Width,
		&i.Height,
		&i.Algorithm,
		&i.OutputDir,
		&i.DurationMs,
		&i.Config,
		&i.CreatedAt,
	)
	return i, err
}

const listRenders = `-- name: ListRenders :many
SELECT id, seed, width, height, algorithm, output_dir, duration_ms, config, created_at
FROM renders
ORDER BY created_at DESC, rowid DESC
LIMIT ?
`

func (q *Queries) ListRenders(ctx context.Context, limit int64) ([]Render, error) {
	rows, err := q.db.QueryContext(ctx, listRenders, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Render
	for rows.Next() {
		var i Render
		if err := rows.Scan(
			&i.ID,
			&i.Seed,
			&i.Width,
			&i.Height,
			&i.Algorithm,
			&i.OutputDir,
			&i.DurationMs,
			&i.Config,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteRender = `-- name: DeleteRender :execrows
DELETE FROM renders
WHERE id = ?
`

func (q *Queries) DeleteRender(ctx context.Context, id string) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteRender, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
