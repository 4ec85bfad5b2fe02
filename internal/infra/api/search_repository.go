package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"

	"github.com/pkg/errors"
)

type searchRepository struct {
	client *Client
}

// NewSearchRepository creates the /search repository.
func NewSearchRepository(client *Client) repository.SearchRepository {
	return &searchRepository{client: client}
}

func (r *searchRepository) TextSearch(ctx context.Context, query string, filters entity.SearchFilters, page entity.Pagination) (*entity.Page[entity.SearchResult], error) {
	q := url.Values{}
	q.Set("q", query)
	setIf(q, "category", filters.Category.String())
	setIf(q, "brand", filters.Brand)
	setIf(q, "color", filters.Color)
	setIf(q, "sort_by", filters.SortBy)
	if filters.MinPrice != nil {
		q.Set("min_price", filters.MinPrice.String())
	}
	if filters.MaxPrice != nil {
		q.Set("max_price", filters.MaxPrice.String())
	}

	return getPage[entity.SearchResult](ctx, r.client, "/search/", q, page)
}

// resultList accepts a bare array or {"results": [...]}.
type resultList []entity.SearchResult

func (l *resultList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return errors.WithStack(json.Unmarshal(trimmed, (*[]entity.SearchResult)(l)))
	}

	var wrapped struct {
		Results []entity.SearchResult `json:"results"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return errors.WithStack(err)
	}
	*l = wrapped.Results

	return nil
}

func (r *searchRepository) VisualSearch(ctx context.Context, image entity.ImageUpload, opts entity.VisualSearchOptions) ([]entity.SearchResult, error) {
	fields := map[string]string{}
	if opts.SimilarityThreshold != nil {
		fields["similarity_threshold"] = strconv.FormatFloat(*opts.SimilarityThreshold, 'f', -1, 64)
	}
	if opts.Deduplicate != nil {
		fields["deduplicate"] = strconv.FormatBool(*opts.Deduplicate)
	}
	if opts.Category != "" {
		fields["category"] = opts.Category.String()
	}
	if opts.Limit > 0 {
		fields["limit"] = strconv.Itoa(opts.Limit)
	}

	var results resultList
	if err := r.client.upload(ctx, "/search/visual/", "image", image, fields, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = resultList{}
	}

	return results, nil
}

func (r *searchRepository) GetHistory(ctx context.Context) ([]entity.SearchHistoryEntry, error) {
	var result pageResult[entity.SearchHistoryEntry]
	if err := r.client.get(ctx, "/search/history/", nil, &result); err != nil {
		return nil, err
	}

	return result.toPage(entity.Pagination{Page: 1}).Items, nil
}

func (r *searchRepository) ClearHistory(ctx context.Context) error {
	return r.client.delete(ctx, "/search/history/", nil)
}
