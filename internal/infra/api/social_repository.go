package api

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
)

type socialRepository struct {
	client *Client
}

// NewSocialRepository creates the /social repository.
func NewSocialRepository(client *Client) repository.SocialRepository {
	return &socialRepository{client: client}
}

func (r *socialRepository) GetFeed(ctx context.Context, page entity.Pagination) (*entity.Page[entity.SocialPost], error) {
	return getPage[entity.SocialPost](ctx, r.client, "/social/posts/", nil, page)
}

func (r *socialRepository) GetPost(ctx context.Context, id string) (*entity.SocialPost, error) {
	var post entity.SocialPost
	if err := r.client.get(ctx, "/social/posts/"+seg(id)+"/", nil, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *socialRepository) CreatePost(ctx context.Context, params repository.CreatePostParams) (*entity.SocialPost, error) {
	var post entity.SocialPost
	if err := r.client.post(ctx, "/social/posts/", params, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *socialRepository) DeletePost(ctx context.Context, id string) error {
	return r.client.delete(ctx, "/social/posts/"+seg(id)+"/", nil)
}

func (r *socialRepository) LikePost(ctx context.Context, id string) error {
	return r.client.post(ctx, "/social/posts/"+seg(id)+"/like/", nil, nil)
}

func (r *socialRepository) UnlikePost(ctx context.Context, id string) error {
	return r.client.delete(ctx, "/social/posts/"+seg(id)+"/like/", nil)
}

func (r *socialRepository) SavePost(ctx context.Context, id string) error {
	return r.client.post(ctx, "/social/posts/"+seg(id)+"/save/", nil, nil)
}

func (r *socialRepository) UnsavePost(ctx context.Context, id string) error {
	return r.client.delete(ctx, "/social/posts/"+seg(id)+"/save/", nil)
}

func (r *socialRepository) GetComments(ctx context.Context, postID string, page entity.Pagination) (*entity.Page[entity.Comment], error) {
	return getPage[entity.Comment](ctx, r.client, "/social/posts/"+seg(postID)+"/comments/", nil, page)
}

func (r *socialRepository) AddComment(ctx context.Context, postID, text string) (*entity.Comment, error) {
	var comment entity.Comment
	if err := r.client.post(ctx, "/social/posts/"+seg(postID)+"/comments/", map[string]string{"text": text}, &comment); err != nil {
		return nil, err
	}
	if comment.PostID == "" {
		comment.PostID = postID
	}

	return &comment, nil
}

func (r *socialRepository) DeleteComment(ctx context.Context, commentID string) error {
	return r.client.delete(ctx, "/social/comments/"+seg(commentID)+"/", nil)
}
