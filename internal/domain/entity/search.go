package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SearchResult is a product match from text or visual search.
type SearchResult struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Brand      string          `json:"brand,omitempty"`
	Category   Category        `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency,omitempty"`
	ImageURL   string          `json:"image_url,omitempty"`
	ProductURL string          `json:"product_url,omitempty"`
	Similarity float64         `json:"similarity,omitempty"`
}

// SearchFilters narrow a text search.
type SearchFilters struct {
	Category Category         `json:"category,omitempty"`
	Brand    string           `json:"brand,omitempty"`
	Color    string           `json:"color,omitempty"`
	MinPrice *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice *decimal.Decimal `json:"max_price,omitempty"`
	SortBy   string           `json:"sort_by,omitempty"`
}

// SearchType distinguishes history entries.
type SearchType string

const (
	SearchTypeText   SearchType = "text"
	SearchTypeVisual SearchType = "visual"
)

// SearchHistoryEntry is a past query.
type SearchHistoryEntry struct {
	ID          string     `json:"id"`
	Type        SearchType `json:"type"`
	Query       string     `json:"query,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	ResultCount int        `json:"result_count"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ImageUpload is an in-memory image sent for visual search.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size is the image size in bytes.
func (img ImageUpload) Size() int {
	return len(img.Data)
}

// VisualSearchOptions tune a visual search. Nil fields take defaults.
type VisualSearchOptions struct {
	SimilarityThreshold *float64 `json:"similarity_threshold,omitempty"`
	Deduplicate         *bool    `json:"deduplicate,omitempty"`
	Category            Category `json:"category,omitempty"`
	Limit               int      `json:"limit,omitempty"`
}
