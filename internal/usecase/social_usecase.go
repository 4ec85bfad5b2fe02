package usecase

import (
	"context"

	"curator/internal/domain/entity"
)

// Post limits.
const (
	MaxPostImages    = 10
	MaxCaptionLength = 2200
)

// CreatePostInput defines a new social post.
type CreatePostInput struct {
	AuthorID string
	Caption  string   `validate:"max=2200"`
	Images   []string `validate:"min=1,max=10"`
	Tags     []string
	OutfitID string
}

// CreatePostUseCase validates and publishes a post.
type CreatePostUseCase interface {
	Execute(ctx context.Context, input CreatePostInput) (*entity.SocialPost, error)
}
