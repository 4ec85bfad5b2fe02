package usecase

import (
	"context"

	"curator/internal/domain/entity"
)

// Visual search limits and defaults.
const (
	MaxVisualSearchImageSize   = 10 * 1024 * 1024
	DefaultSimilarityThreshold = 0.85
	DefaultDeduplicate         = true
)

// AllowedImageTypes are the MIME types accepted for visual search.
//
//nolint:gochecknoglobals
var AllowedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// VisualSearchInput is an image query.
type VisualSearchInput struct {
	UserID      string
	Image       entity.ImageUpload
	ContentType string `validate:"oneof=image/jpeg image/jpg image/png image/webp"`
	Options     entity.VisualSearchOptions
}

// PerformVisualSearchUseCase validates the upload and applies search defaults.
type PerformVisualSearchUseCase interface {
	Execute(ctx context.Context, input VisualSearchInput) ([]entity.SearchResult, error)
}
