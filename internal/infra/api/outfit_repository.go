package api

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
)

type outfitRepository struct {
	client *Client
}

// NewOutfitRepository creates the /outfits repository.
func NewOutfitRepository(client *Client) repository.OutfitRepository {
	return &outfitRepository{client: client}
}

func (r *outfitRepository) GetRecommendations(ctx context.Context, filters entity.RecommendationFilters) (*entity.Page[entity.OutfitRecommendation], error) {
	q := url.Values{}
	setIf(q, "occasion", filters.Occasion)
	setIf(q, "season", filters.Season)
	setIf(q, "styles", strings.Join(filters.Styles, ","))
	if filters.MinPrice != nil {
		q.Set("min_price", filters.MinPrice.String())
	}
	if filters.MaxPrice != nil {
		q.Set("max_price", filters.MaxPrice.String())
	}

	// sizes[top]=M, sorted so requests are reproducible
	keys := make([]string, 0, len(filters.Sizes))
	for k := range filters.Sizes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set("sizes["+k+"]", filters.Sizes[k])
	}

	return getPage[entity.OutfitRecommendation](ctx, r.client, "/outfits/recommendations/", q,
		entity.Pagination{Page: filters.Page, Limit: filters.Limit})
}

func (r *outfitRepository) GetOutfit(ctx context.Context, id string) (*entity.Outfit, error) {
	var outfit entity.Outfit
	if err := r.client.get(ctx, "/outfits/"+seg(id)+"/", nil, &outfit); err != nil {
		return nil, err
	}

	return &outfit, nil
}

func (r *outfitRepository) GetSaved(ctx context.Context, page entity.Pagination) (*entity.Page[entity.Outfit], error) {
	return getPage[entity.Outfit](ctx, r.client, "/outfits/saved/", nil, page)
}

func (r *outfitRepository) LikeOutfit(ctx context.Context, id string) error {
	return r.client.post(ctx, "/outfits/"+seg(id)+"/like/", nil, nil)
}

func (r *outfitRepository) UnlikeOutfit(ctx context.Context, id string) error {
	return r.client.delete(ctx, "/outfits/"+seg(id)+"/like/", nil)
}

func (r *outfitRepository) SaveOutfit(ctx context.Context, id string) error {
	return r.client.post(ctx, "/outfits/"+seg(id)+"/save/", nil, nil)
}

func (r *outfitRepository) UnsaveOutfit(ctx context.Context, id string) error {
	return r.client.delete(ctx, "/outfits/"+seg(id)+"/save/", nil)
}
