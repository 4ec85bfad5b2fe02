package usecase

import (
	"context"

	"curator/internal/domain/entity"
)

// AddWardrobeItemInput defines a new wardrobe item.
type AddWardrobeItemInput struct {
	UserID string
	Item   entity.WardrobeItem
}

// AddWardrobeItemUseCase validates an item and fills in defaults.
type AddWardrobeItemUseCase interface {
	Execute(ctx context.Context, input AddWardrobeItemInput) (*entity.WardrobeItem, error)
}
