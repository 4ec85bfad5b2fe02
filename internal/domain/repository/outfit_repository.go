package repository

import (
	"context"

	"curator/internal/domain/entity"
)

// OutfitRepository defines the /outfits endpoints.
type OutfitRepository interface {
	// GetRecommendations queries the recommender.
	GetRecommendations(ctx context.Context, filters entity.RecommendationFilters) (*entity.Page[entity.OutfitRecommendation], error)

	// GetOutfit retrieves a single outfit.
	GetOutfit(ctx context.Context, id string) (*entity.Outfit, error)

	// GetSaved lists the current user's saved outfits.
	GetSaved(ctx context.Context, page entity.Pagination) (*entity.Page[entity.Outfit], error)

	LikeOutfit(ctx context.Context, id string) error
	UnlikeOutfit(ctx context.Context, id string) error
	SaveOutfit(ctx context.Context, id string) error
	UnsaveOutfit(ctx context.Context, id string) error
}
