package db

import (
	"time"
)

type Render struct {
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
