// Package catalog records finished renders in a SQLite database.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/VoidMesh/terrainpainter/internal/config"
	"github.com/VoidMesh/terrainpainter/internal/db"
	"github.com/VoidMesh/terrainpainter/internal/logging"
	"github.com/VoidMesh/terrainpainter/internal/pipeline"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

var ErrNotFound = errors.New("render not found")

// Render describes one pipeline run and the config text that produced it.
type Render struct {
	ID        uuid.UUID     `json:"id"`
	Seed      int64         `json:"seed"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Algorithm string        `json:"algorithm"`
	OutputDir string        `json:"output_dir,omitempty"`
	Duration  time.Duration `json:"duration"`
	Config    string        `json:"config"`
	CreatedAt time.Time     `json:"created_at"`
}

// NewRender builds a catalog entry for res rendered from cfg.
func NewRender(cfg *config.MapConfig, res *pipeline.Result, outputDir string) (Render, error) {
	text, err := cfg.Encode()
	if err != nil {
		return Render{}, err
	}
	return Render{
		Seed:      res.Seed,
		Width:     res.Width,
		Height:    res.Height,
		Algorithm: string(cfg.Algorithm()),
		OutputDir: outputDir,
		Duration:  res.Duration,
		Config:    text,
	}, nil
}

// Store is safe for concurrent use.
type Store struct {
	db      *sql.DB
	queries *db.LoggingQueries
}

// Open connects to the SQLite file named by cfg and applies migrations.
func Open(cfg config.DatabaseConfig) (*Store, error) {
	logger := logging.WithFields("path", cfg.Path)
	logger.Debug("Opening database connection")

	database, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		database.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		database.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	database.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if err := db.Migrate(database); err != nil {
		database.Close()
		return nil, err
	}

	logger.Info("Render catalog ready")
	return NewStore(database), nil
}

// NewStore wraps an already migrated database.
func NewStore(database *sql.DB) *Store {
	return &Store{
		db:      database,
		queries: db.NewLoggingQueries(database),
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores r. A nil ID and a zero CreatedAt are filled in; the stored
// render is returned.
func (s *Store) Record(ctx context.Context, r Render) (Render, error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	err := s.queries.CreateRender(ctx, db.CreateRenderParams{
		ID:         r.ID.String(),
		Seed:       r.Seed,
		Width:      int64(r.Width),
		Height:     int64(r.Height),
		Algorithm:  r.Algorithm,
		OutputDir:  r.OutputDir,
		DurationMs: r.Duration.Milliseconds(),
		Config:     r.Config,
		CreatedAt:  r.CreatedAt,
	})
	if err != nil {
		return Render{}, fmt.Errorf("failed to record render: %w", err)
	}

	logging.WithFields("id", r.ID, "seed", r.Seed).Info("Render recorded")
	return r, nil
}

// Get returns the render with id or ErrNotFound.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Render, error) {
	row, err := s.queries.GetRender(ctx, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return Render{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Render{}, fmt.Errorf("failed to get render: %w", err)
	}
	return fromRow(row)
}

// List returns the newest renders first. limit <= 0 selects
// DefaultListLimit; larger values are capped at MaxListLimit.
func (s *Store) List(ctx context.Context, limit int) ([]Render, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	rows, err := s.queries.ListRenders(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list renders: %w", err)
	}

	renders := make([]Render, 0, len(rows))
	for _, row := range rows {
		r, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		renders = append(renders, r)
	}
	return renders, nil
}

// Delete removes the render with id or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := s.queries.DeleteRender(ctx, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete render: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func fromRow(row db.Render) (Render, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return Render{}, fmt.Errorf("corrupt render id %q: %w", row.ID, err)
	}
	return Render{
		ID:        id,
		Seed:      row.Seed,
		Width:     int(row.Width),
		Height:    int(row.Height),
		Algorithm: row.Algorithm,
		OutputDir: row.OutputDir,
		Duration:  time.Duration(row.DurationMs) * time.Millisecond,
		Config:    row.Config,
		CreatedAt: row.CreatedAt,
	}, nil
}
