package repository

import (
	"context"

	"curator/internal/domain/entity"
)

// CreateLookbookParams is the payload for creating a lookbook.
type CreateLookbookParams struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	CoverImage  string   `json:"cover_image,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsPublic    bool     `json:"is_public"`
	OutfitIDs   []string `json:"outfit_ids,omitempty"`
}

// LookbookRepository defines the /lookbooks endpoints.
type LookbookRepository interface {
	GetLookbooks(ctx context.Context, filter entity.LookbookFilter, page entity.Pagination) (*entity.Page[entity.Lookbook], error)
	GetLookbook(ctx context.Context, id string) (*entity.Lookbook, error)
	CreateLookbook(ctx context.Context, params CreateLookbookParams) (*entity.Lookbook, error)
	DeleteLookbook(ctx context.Context, id string) error

	// AddOutfit appends an outfit and returns the updated lookbook.
	AddOutfit(ctx context.Context, lookbookID, outfitID string) (*entity.Lookbook, error)

	// RemoveOutfit removes an outfit and returns the updated lookbook.
	RemoveOutfit(ctx context.Context, lookbookID, outfitID string) (*entity.Lookbook, error)

	LikeLookbook(ctx context.Context, id string) error
	UnlikeLookbook(ctx context.Context, id string) error
}
