package repository

import (
	"context"

	"curator/internal/domain/entity"
)

// SearchRepository defines the /search endpoints.
type SearchRepository interface {
	// TextSearch runs a keyword query.
	TextSearch(ctx context.Context, query string, filters entity.SearchFilters, page entity.Pagination) (*entity.Page[entity.SearchResult], error)

	// VisualSearch uploads an image and returns visually similar products.
	VisualSearch(ctx context.Context, image entity.ImageUpload, opts entity.VisualSearchOptions) ([]entity.SearchResult, error)

	GetHistory(ctx context.Context) ([]entity.SearchHistoryEntry, error)
	ClearHistory(ctx context.Context) error
}
