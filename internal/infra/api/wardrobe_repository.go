package api

import (
	"context"
	"net/url"
	"strings"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
)

type wardrobeRepository struct {
	client *Client
}

// NewWardrobeRepository creates the /wardrobe repository.
func NewWardrobeRepository(client *Client) repository.WardrobeRepository {
	return &wardrobeRepository{client: client}
}

func (r *wardrobeRepository) GetWardrobe(ctx context.Context) (*entity.Wardrobe, error) {
	var wardrobe entity.Wardrobe
	if err := r.client.get(ctx, "/wardrobe/", nil, &wardrobe); err != nil {
		return nil, err
	}
	if wardrobe.Items == nil {
		wardrobe.Items = []entity.WardrobeItem{}
	}

	return &wardrobe, nil
}

func (r *wardrobeRepository) GetItems(ctx context.Context, filter entity.WardrobeFilter, page entity.Pagination) (*entity.Page[entity.WardrobeItem], error) {
	q := url.Values{}
	setIf(q, "category", filter.Category.String())
	setIf(q, "color", filter.Color)
	setIf(q, "brand", filter.Brand)
	setIf(q, "search", filter.Search)
	setIf(q, "tags", strings.Join(filter.Tags, ","))

	return getPage[entity.WardrobeItem](ctx, r.client, "/wardrobe/items/", q, page)
}

func (r *wardrobeRepository) GetItem(ctx context.Context, id string) (*entity.WardrobeItem, error) {
	var item entity.WardrobeItem
	if err := r.client.get(ctx, "/wardrobe/items/"+seg(id)+"/", nil, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *wardrobeRepository) AddItem(ctx context.Context, item *entity.WardrobeItem) (*entity.WardrobeItem, error) {
	var created entity.WardrobeItem
	if err := r.client.post(ctx, "/wardrobe/items/", item, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *wardrobeRepository) UpdateItem(ctx context.Context, id string, params repository.UpdateWardrobeItemParams) (*entity.WardrobeItem, error) {
	var item entity.WardrobeItem
	if err := r.client.patch(ctx, "/wardrobe/items/"+seg(id)+"/", params, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *wardrobeRepository) DeleteItem(ctx context.Context, id string) error {
	return r.client.delete(ctx, "/wardrobe/items/"+seg(id)+"/", nil)
}

func (r *wardrobeRepository) MarkWorn(ctx context.Context, id string) (*entity.WardrobeItem, error) {
	var item entity.WardrobeItem
	if err := r.client.post(ctx, "/wardrobe/items/"+seg(id)+"/wear/", nil, &item); err != nil {
		return nil, err
	}

	return &item, nil
}
