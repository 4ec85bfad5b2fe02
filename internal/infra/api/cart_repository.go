package api

import (
	"context"

	"curator/internal/domain/entity"
	"curator/internal/domain/repository"

	"github.com/pkg/errors"
)

type cartRepository struct {
	client *Client
}

// NewCartRepository creates the /cart repository.
func NewCartRepository(client *Client) repository.CartRepository {
	return &cartRepository{client: client}
}

// cart decodes a cart response. An empty body (204) is an empty cart.
func (r *cartRepository) cart(err error, c *entity.Cart) (*entity.Cart, error) {
	if err != nil {
		return nil, err
	}
	if c.Items == nil {
		c.Items = []entity.CartItem{}
	}

	return c, nil
}

func (r *cartRepository) GetCart(ctx context.Context) (*entity.Cart, error) {
	var c entity.Cart

	return r.cart(r.client.get(ctx, "/cart/", nil, &c), &c)
}

func (r *cartRepository) AddItem(ctx context.Context, params repository.AddToCartParams) (*entity.Cart, error) {
	if params.Quantity <= 0 {
		params.Quantity = 1
	}
	var c entity.Cart

	return r.cart(r.client.post(ctx, "/cart/items/", params, &c), &c)
}

func (r *cartRepository) UpdateItemQuantity(ctx context.Context, itemID string, quantity int) (*entity.Cart, error) {
	var c entity.Cart

	return r.cart(r.client.patch(ctx, "/cart/items/"+seg(itemID)+"/", map[string]int{"quantity": quantity}, &c), &c)
}

func (r *cartRepository) RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error) {
	var c entity.Cart

	return r.cart(r.client.delete(ctx, "/cart/items/"+seg(itemID)+"/", &c), &c)
}

func (r *cartRepository) ClearCart(ctx context.Context) (*entity.Cart, error) {
	var c entity.Cart

	return r.cart(r.client.delete(ctx, "/cart/", &c), &c)
}

func (r *cartRepository) ApplyPromoCode(ctx context.Context, code string) (*entity.Cart, error) {
	var c entity.Cart

	return r.cart(r.client.post(ctx, "/cart/promo/", map[string]string{"code": code}, &c), &c)
}

func (r *cartRepository) RemovePromoCode(ctx context.Context) (*entity.Cart, error) {
	var c entity.Cart

	return r.cart(r.client.delete(ctx, "/cart/promo/", &c), &c)
}

func (r *cartRepository) CalculateShipping(ctx context.Context, address entity.ShippingAddress) (*entity.Cart, error) {
	var c entity.Cart

	return r.cart(r.client.post(ctx, "/cart/shipping/", map[string]any{"shipping_address": address}, &c), &c)
}

func (r *cartRepository) Checkout(ctx context.Context, params repository.CheckoutParams) (*entity.Order, error) {
	var order entity.Order
	if err := r.client.post(ctx, "/cart/checkout/", params, &order); err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, errors.New("checkout response is missing the order ID")
	}

	return &order, nil
}
