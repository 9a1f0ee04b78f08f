package repository

import (
	"context"

	"cryptobuzz-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// Upsert inserts items, refreshing sentiment and score of URLs already stored. It returns the rows written.
	Upsert(ctx context.Context, opts UpsertOptions) (int, error)
	List(ctx context.Context, opts ListOptions) ([]model.NewsItem, error)
	GetOne(ctx context.Context, opts GetOneOptions) (model.NewsItem, error)
}
