package state

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// CartState mirrors the server cart. Totals are never recomputed locally.
type CartState struct {
	Status
	Cart      *entity.Cart      `json:"cart"`
	Items     []entity.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  decimal.Decimal   `json:"subtotal"`
	Shipping  decimal.Decimal   `json:"shipping"`
	Tax       decimal.Decimal   `json:"tax"`
	Discount  decimal.Decimal   `json:"discount"`
	Total     decimal.Decimal   `json:"total"`
	PromoCode string            `json:"promo_code"`
	Currency  string            `json:"currency"`
	LastOrder *entity.Order     `json:"last_order"`
}

func initialCartState() CartState {
	return CartState{Items: []entity.CartItem{}}
}

// replace copies every field of the server cart.
func (st *CartState) replace(c *entity.Cart) {
	st.Cart = c
	st.Items = append([]entity.CartItem{}, c.Items...)
	st.ItemCount = c.ItemCount()
	st.Subtotal = c.Subtotal
	st.Shipping = c.Shipping
	st.Tax = c.Tax
	st.Discount = c.Discount
	st.Total = c.Total
	st.PromoCode = c.PromoCode
	st.Currency = c.Currency
}

// CartSlice owns the cart. Every mutation stores the server cart verbatim.
type CartSlice struct {
	*Slice[CartState]

	repo repository.CartRepository
}

// NewCartSlice returns a slice with an empty cart.
func NewCartSlice(repo repository.CartRepository) *CartSlice {
	return &CartSlice{
		Slice: NewSlice("cart", initialCartState, func(s *CartState) *Status {
			return &s.Status
		}),
		repo: repo,
	}
}

func (s *CartSlice) mutate(ctx context.Context, fallback string, call func(context.Context) (*entity.Cart, error)) (*entity.Cart, error) {
	return Run(ctx, s.Slice, Reducers[CartState, *entity.Cart]{
		Fulfilled: func(st *CartState, c *entity.Cart) {
			st.replace(c)
		},
		Fallback: fallback,
	}, call)
}

// FetchCart loads the current cart.
func (s *CartSlice) FetchCart(ctx context.Context) (*entity.Cart, error) {
	return s.mutate(ctx, "Failed to load cart", s.repo.GetCart)
}

// AddToCart adds a product variant.
func (s *CartSlice) AddToCart(ctx context.Context, params repository.AddToCartParams) (*entity.Cart, error) {
	return s.mutate(ctx, "Failed to add to cart", func(ctx context.Context) (*entity.Cart, error) {
		return s.repo.AddItem(ctx, params)
	})
}

// UpdateQuantity sets the quantity of a cart line.
func (s *CartSlice) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*entity.Cart, error) {
	return s.mutate(ctx, "Failed to update quantity", func(ctx context.Context) (*entity.Cart, error) {
		return s.repo.UpdateItemQuantity(ctx, itemID, quantity)
	})
}

// RemoveItem drops a cart line.
func (s *CartSlice) RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error) {
	return s.mutate(ctx, "Failed to remove item", func(ctx context.Context) (*entity.Cart, error) {
		return s.repo.RemoveItem(ctx, itemID)
	})
}

// ClearCart empties the cart on the backend.
func (s *CartSlice) ClearCart(ctx context.Context) (*entity.Cart, error) {
	return s.mutate(ctx, "Failed to clear cart", s.repo.ClearCart)
}

// ApplyPromo applies a promo code; the backend reprices the cart.
func (s *CartSlice) ApplyPromo(ctx context.Context, code string) (*entity.Cart, error) {
	return s.mutate(ctx, "Failed to apply promo code", func(ctx context.Context) (*entity.Cart, error) {
		return s.repo.ApplyPromoCode(ctx, code)
	})
}

// RemovePromo removes the applied promo code.
func (s *CartSlice) RemovePromo(ctx context.Context) (*entity.Cart, error) {
	return s.mutate(ctx, "Failed to remove promo code", s.repo.RemovePromoCode)
}

// CalculateShipping takes the re-priced cart verbatim, like every other mutation.
func (s *CartSlice) CalculateShipping(ctx context.Context, address entity.ShippingAddress) (*entity.Cart, error) {
	return s.mutate(ctx, "Failed to calculate shipping", func(ctx context.Context) (*entity.Cart, error) {
		return s.repo.CalculateShipping(ctx, address)
	})
}

// Checkout places the order. The backend empties the cart, so local cart
// fields reset and the order is kept as LastOrder.
func (s *CartSlice) Checkout(ctx context.Context, params repository.CheckoutParams) (*entity.Order, error) {
	return Run(ctx, s.Slice, Reducers[CartState, *entity.Order]{
		Fulfilled: func(st *CartState, order *entity.Order) {
			status := st.Status
			*st = initialCartState()
			st.Status = status
			st.LastOrder = order
		},
		Fallback: "Checkout failed",
	}, func(ctx context.Context) (*entity.Order, error) {
		return s.repo.Checkout(ctx, params)
	})
}
