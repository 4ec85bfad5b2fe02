package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OutfitItem is one purchasable piece within an outfit.
type OutfitItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Brand      string          `json:"brand,omitempty"`
	Category   Category        `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency,omitempty"`
	ImageURL   string          `json:"image_url,omitempty"`
	ProductURL string          `json:"product_url,omitempty"`
	InStock    bool            `json:"in_stock"`
}

// Outfit is an ordered set of items worn together.
type Outfit struct {
	ID              string          `json:"id"`
	Name            string          `json:"name,omitempty"`
	Items           []OutfitItem    `json:"items"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Currency        string          `json:"currency,omitempty"`
	ConfidenceScore float64         `json:"confidence_score"`
	Occasion        string          `json:"occasion,omitempty"`
	Season          string          `json:"season,omitempty"`
	Styles          []string        `json:"styles,omitempty"`
	LikesCount      int             `json:"likes_count"`
	IsLiked         bool            `json:"is_liked"`
	IsSaved         bool            `json:"is_saved"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OutfitRecommendation is an outfit produced by the recommender, with the reason it was picked.
type OutfitRecommendation struct {
	Outfit
	Reason string `json:"reason,omitempty"`
}

// RecomputeTotal sets TotalPrice to the sum of item prices and returns it.
func (o *Outfit) RecomputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price)
	}
	o.TotalPrice = total

	return total
}

// RecommendationFilters narrow an outfit recommendation query.
type RecommendationFilters struct {
	Occasion string            `json:"occasion,omitempty"`
	Season   string            `json:"season,omitempty"`
	Styles   []string          `json:"styles,omitempty"`
	Sizes    map[string]string `json:"sizes,omitempty"`
	MinPrice *decimal.Decimal  `json:"min_price,omitempty"`
	MaxPrice *decimal.Decimal  `json:"max_price,omitempty"`
	Page     int               `json:"page,omitempty"`
	Limit    int               `json:"limit,omitempty"`
}
