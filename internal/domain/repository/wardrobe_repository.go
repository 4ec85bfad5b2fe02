package repository

import (
	"context"

	"curator/internal/domain/entity"
)

// UpdateWardrobeItemParams carries the item fields to change. Nil fields are left untouched.
type UpdateWardrobeItemParams struct {
	Name       *string            `json:"name,omitempty"`
	Category   *entity.Category   `json:"category,omitempty"`
	Brand      *string            `json:"brand,omitempty"`
	Color      *string            `json:"color,omitempty"`
	Size       *string            `json:"size,omitempty"`
	Images     []string           `json:"images,omitempty"`
	Tags       []string           `json:"tags,omitempty"`
	Attributes []entity.Attribute `json:"attributes,omitempty"`
}

// WardrobeRepository defines the /wardrobe endpoints.
type WardrobeRepository interface {
	// GetWardrobe returns the current user's wardrobe including its items.
	GetWardrobe(ctx context.Context) (*entity.Wardrobe, error)

	// GetItems lists wardrobe items matching filter.
	GetItems(ctx context.Context, filter entity.WardrobeFilter, page entity.Pagination) (*entity.Page[entity.WardrobeItem], error)

	// GetItem retrieves a single item.
	GetItem(ctx context.Context, id string) (*entity.WardrobeItem, error)

	// AddItem persists a new item and returns it with its server-assigned ID.
	AddItem(ctx context.Context, item *entity.WardrobeItem) (*entity.WardrobeItem, error)

	// UpdateItem modifies an existing item.
	UpdateItem(ctx context.Context, id string, params UpdateWardrobeItemParams) (*entity.WardrobeItem, error)

	// DeleteItem removes an item.
	DeleteItem(ctx context.Context, id string) error

	// MarkWorn increments the item's wear counter.
	MarkWorn(ctx context.Context, id string) (*entity.WardrobeItem, error)
}
