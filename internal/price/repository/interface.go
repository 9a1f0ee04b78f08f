package repository

import (
	"context"

	"cryptobuzz-srv/internal/model"
)

// SnapshotRepository keeps the last known snapshot per symbol across restarts.
//
//go:generate mockery --name SnapshotRepository
type SnapshotRepository interface {
	Save(ctx context.Context, snaps []model.PriceSnapshot) error
	// Get returns the stored snapshots; missing symbols are absent from the map.
	Get(ctx context.Context, symbols []string) (map[string]model.PriceSnapshot, error)
}
