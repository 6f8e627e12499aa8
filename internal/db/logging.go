package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/VoidMesh/terrainpainter/internal/logging"
)

// LoggingQueries wraps the generated Queries struct to add debug logging
type LoggingQueries struct {
	*Queries
}

// NewLoggingQueries creates a new LoggingQueries instance
func NewLoggingQueries(db DBTX) *LoggingQueries {
	return &LoggingQueries{
		Queries: New(db),
	}
}

// WithTx creates a new LoggingQueries with a transaction
func (lq *LoggingQueries) WithTx(tx *sql.Tx) *LoggingQueries {
	return &LoggingQueries{
		Queries: lq.Queries.WithTx(tx),
	}
}

func (lq *LoggingQueries) logQuery(queryName string, start time.Time, err error, args ...interface{}) {
	logger := logging.WithDuration(queryName, time.Since(start))
	if err != nil {
		logger.Debug("Database query failed", "error", err, "args", args)
		return
	}
	logger.Debug("Database query executed", "args", args)
}

// CreateRender with logging
func (lq *LoggingQueries) CreateRender(ctx context.Context, arg CreateRenderParams) error {
	start := time.Now()
	logging.GetLogger().Debug("Executing CreateRender", "id", arg.ID, "seed", arg.Seed)

	err := lq.Queries.CreateRender(ctx, arg)
	lq.logQuery("CreateRender", start, err, arg.ID)
	return err
}

// GetRender with logging
func (lq *LoggingQueries) GetRender(ctx context.Context, id string) (Render, error) {
	start := time.Now()

	result, err := lq.Queries.GetRender(ctx, id)
	lq.logQuery("GetRender", start, err, id)
	return result, err
}

// ListRenders with logging
func (lq *LoggingQueries) ListRenders(ctx context.Context, limit int64) ([]Render, error) {
	start := time.Now()

	result, err := lq.Queries.ListRenders(ctx, limit)
	lq.logQuery("ListRenders", start, err, limit)
	if err == nil {
		logging.GetLogger().Debug("ListRenders result", "count", len(result), "limit", limit)
	}
	return result, err
}

// DeleteRender with logging
func (lq *LoggingQueries) DeleteRender(ctx context.Context, id string) (int64, error) {
	start := time.Now()

	affected, err := lq.Queries.DeleteRender(ctx, id)
	lq.logQuery("DeleteRender", start, err, id)
	return affected, err
}
