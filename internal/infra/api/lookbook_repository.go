package api

import (
	"context"
	"net/url"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
)

type lookbookRepository struct {
	client *Client
}

// NewLookbookRepository creates the /lookbooks repository.
func NewLookbookRepository(client *Client) repository.LookbookRepository {
	return &lookbookRepository{client: client}
}

func (r *lookbookRepository) GetLookbooks(ctx context.Context, filter entity.LookbookFilter, page entity.Pagination) (*entity.Page[entity.Lookbook], error) {
	q := url.Values{}
	setIf(q, "author", filter.AuthorID)
	setIf(q, "tag", filter.Tag)
	if filter.Featured {
		q.Set("featured", "true")
	}

	return getPage[entity.Lookbook](ctx, r.client, "/lookbooks/", q, page)
}

func (r *lookbookRepository) GetLookbook(ctx context.Context, id string) (*entity.Lookbook, error) {
	var lookbook entity.Lookbook
	if err := r.client.get(ctx, "/lookbooks/"+seg(id)+"/", nil, &lookbook); err != nil {
		return nil, err
	}

	return &lookbook, nil
}

func (r *lookbookRepository) CreateLookbook(ctx context.Context, params repository.CreateLookbookParams) (*entity.Lookbook, error) {
	var lookbook entity.Lookbook
	if err := r.client.post(ctx, "/lookbooks/", params, &lookbook); err != nil {
		return nil, err
	}

	return &lookbook, nil
}

func (r *lookbookRepository) DeleteLookbook(ctx context.Context, id string) error {
	return r.client.delete(ctx, "/lookbooks/"+seg(id)+"/", nil)
}

func (r *lookbookRepository) AddOutfit(ctx context.Context, lookbookID, outfitID string) (*entity.Lookbook, error) {
	var lookbook entity.Lookbook
	if err := r.client.post(ctx, "/lookbooks/"+seg(lookbookID)+"/outfits/", map[string]string{"outfit_id": outfitID}, &lookbook); err != nil {
		return nil, err
	}

	return &lookbook, nil
}

func (r *lookbookRepository) RemoveOutfit(ctx context.Context, lookbookID, outfitID string) (*entity.Lookbook, error) {
	var lookbook entity.Lookbook
	if err := r.client.delete(ctx, "/lookbooks/"+seg(lookbookID)+"/outfits/"+seg(outfitID)+"/", &lookbook); err != nil {
		return nil, err
	}

	return &lookbook, nil
}

func (r *lookbookRepository) LikeLookbook(ctx context.Context, id string) error {
	return r.client.post(ctx, "/lookbooks/"+seg(id)+"/like/", nil, nil)
}

func (r *lookbookRepository) UnlikeLookbook(ctx context.Context, id string) error {
	return r.client.delete(ctx, "/lookbooks/"+seg(id)+"/like/", nil)
}
