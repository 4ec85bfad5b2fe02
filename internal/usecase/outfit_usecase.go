package usecase

import (
	"context"

	"curator/internal/domain/entity"
)

// RecommendationsInput asks for recommendations for a user. An empty UserID
// skips the preference merge.
type RecommendationsInput struct {
	UserID  string
	Filters entity.RecommendationFilters
}

// GetRecommendationsUseCase merges stored preferences into the query.
type GetRecommendationsUseCase interface {
	Execute(ctx context.Context, input RecommendationsInput) (*entity.Page[entity.OutfitRecommendation], error)
}
