package repository

import (
	"context"

	"curator/internal/domain/entity"
)

// AddToCartParams identifies the product variant to add.
type AddToCartParams struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// CheckoutParams is the payload for placing an order.
type CheckoutParams struct {
	ShippingAddress entity.ShippingAddress `json:"shipping_address"`
	PaymentMethodID string                 `json:"payment_method_id"`
}

// CartRepository defines the /cart endpoints. Every mutation returns the
// whole server-computed cart.
type CartRepository interface {
	GetCart(ctx context.Context) (*entity.Cart, error)
	AddItem(ctx context.Context, params AddToCartParams) (*entity.Cart, error)
	UpdateItemQuantity(ctx context.Context, itemID string, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error)
	ClearCart(ctx context.Context) (*entity.Cart, error)
	ApplyPromoCode(ctx context.Context, code string) (*entity.Cart, error)
	RemovePromoCode(ctx context.Context) (*entity.Cart, error)

	// CalculateShipping quotes shipping for address and returns the re-priced cart.
	CalculateShipping(ctx context.Context, address entity.ShippingAddress) (*entity.Cart, error)

	// Checkout places the order for the current cart.
	Checkout(ctx context.Context, params CheckoutParams) (*entity.Order, error)
}
