package repository

import (
	"context"

	"curator/internal/domain/entity"
)

// CreatePostParams is the payload for publishing a post.
type CreatePostParams struct {
	Caption  string   `json:"caption"`
	Images   []string `json:"images"`
	Tags     []string `json:"tags,omitempty"`
	OutfitID string   `json:"outfit_id,omitempty"`
}

// SocialRepository defines the /social endpoints.
type SocialRepository interface {
	// GetFeed lists the current user's feed.
	GetFeed(ctx context.Context, page entity.Pagination) (*entity.Page[entity.SocialPost], error)

	GetPost(ctx context.Context, id string) (*entity.SocialPost, error)
	CreatePost(ctx context.Context, params CreatePostParams) (*entity.SocialPost, error)
	DeletePost(ctx context.Context, id string) error

	LikePost(ctx context.Context, id string) error
	UnlikePost(ctx context.Context, id string) error
	SavePost(ctx context.Context, id string) error
	UnsavePost(ctx context.Context, id string) error

	// GetComments lists the comments of a post, oldest first.
	GetComments(ctx context.Context, postID string, page entity.Pagination) (*entity.Page[entity.Comment], error)
	AddComment(ctx context.Context, postID, text string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}
