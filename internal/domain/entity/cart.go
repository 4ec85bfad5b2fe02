package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a product line in the shopping cart.
type CartItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	InStock   bool            `json:"in_stock"`
}

// LineTotal is price times quantity.
func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// Cart is the server-computed shopping cart. The client never recomputes its
// money fields; every mutation returns a fresh cart.
type Cart struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Items     []CartItem      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Tax       decimal.Decimal `json:"tax"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	PromoCode string          `json:"promo_code,omitempty"`
	Currency  string          `json:"currency,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ExpectedTotal is subtotal + shipping + tax - discount.
func (c *Cart) ExpectedTotal() decimal.Decimal {
	return c.Subtotal.Add(c.Shipping).Add(c.Tax).Sub(c.Discount)
}

// Consistent reports whether the server total matches ExpectedTotal.
func (c *Cart) Consistent() bool {
	return c.Total.Equal(c.ExpectedTotal())
}

// ItemCount is the number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// ShippingAddress is used to quote shipping and to place an order.
type ShippingAddress struct {
	FullName   string `json:"full_name" validate:"required"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required,len=2"`
	Phone      string `json:"phone,omitempty"`
}

// Order is the result of a checkout.
type Order struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
