package repository

import "cryptobuzz-srv/internal/model"

type UpsertOptions struct {
	Items []model.NewsItem
}

// Filter narrows news queries. An empty Currency matches every item.
type Filter struct {
	Currency string
}

type ListOptions struct {
	Filter Filter
	Limit  int
}

// GetOneOptions selects the newest item matching the filter.
type GetOneOptions struct {
	Filter Filter
}
