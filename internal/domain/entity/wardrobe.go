package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WardrobeItem is a single garment or accessory owned by the user.
type WardrobeItem struct {
	ID               string          `json:"id"`
	WardrobeID       string          `json:"wardrobe_id,omitempty"`
	Category         Category        `json:"category"`
	Name             string          `json:"name"`
	Brand            string          `json:"brand,omitempty"`
	Color            string          `json:"color,omitempty"`
	Size             string          `json:"size,omitempty"`
	Price            decimal.Decimal `json:"price"`
	Currency         string          `json:"currency,omitempty"`
	Images           []string        `json:"images"`
	Attributes       []Attribute     `json:"attributes"`
	Tags             []string        `json:"tags"`
	TimesWorn        int             `json:"times_worn"`
	LastWorn         *time.Time      `json:"last_worn,omitempty"`
	PurchaseDate     *time.Time      `json:"purchase_date,omitempty"`
	PurchaseLocation string          `json:"purchase_location,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Attribute is a free-form key/value pair attached to an item (fabric, fit, ...).
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Wardrobe is a user's collection of items.
type Wardrobe struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Name       string          `json:"name"`
	Items      []WardrobeItem  `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// WardrobeFilter narrows a wardrobe item listing.
type WardrobeFilter struct {
	Category Category `json:"category,omitempty"`
	Color    string   `json:"color,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	Search   string   `json:"search,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}
