package handler

import (
	"curator/internal/delivery/http/response"
	"curator/internal/domain/entity"
	"curator/internal/domain/repository"
	"curator/internal/state"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler exposes the cart slice. Responses carry the committed cart state.
type CartHandler struct {
	cart *state.CartSlice
}

// NewCartHandler returns a handler bound to the store.
func NewCartHandler(store *state.Store) *CartHandler {
	return &CartHandler{cart: store.Cart}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type updateQuantityRequest struct {
	ItemID   string `param:"id" json:"-"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

type promoRequest struct {
	Code string `json:"code" validate:"required"`
}

type checkoutRequest struct {
	ShippingAddress entity.ShippingAddress `json:"shipping_address"`
	PaymentMethodID string                 `json:"payment_method_id" validate:"required"`
}

// Get loads the cart.
func (h *CartHandler) Get(c echo.Context) error {
	return h.respond(c, ignore(h.cart.FetchCart(c.Request().Context())))
}

// AddItem validates the body and adds the variant to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addToCartRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.respond(c, ignore(h.cart.AddToCart(c.Request().Context(), repository.AddToCartParams{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
	})))
}

// UpdateQuantity changes the quantity of the cart line in the path.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.respond(c, ignore(h.cart.UpdateQuantity(c.Request().Context(), req.ItemID, req.Quantity)))
}

// RemoveItem drops the cart line in the path.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	return h.respond(c, ignore(h.cart.RemoveItem(c.Request().Context(), c.Param("id"))))
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	return h.respond(c, ignore(h.cart.ClearCart(c.Request().Context())))
}

// ApplyPromo applies the promo code from the body.
func (h *CartHandler) ApplyPromo(c echo.Context) error {
	var req promoRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	return h.respond(c, ignore(h.cart.ApplyPromo(c.Request().Context(), req.Code)))
}

// RemovePromo removes the applied promo code.
func (h *CartHandler) RemovePromo(c echo.Context) error {
	return h.respond(c, ignore(h.cart.RemovePromo(c.Request().Context())))
}

// Shipping reprices the cart for the posted address.
func (h *CartHandler) Shipping(c echo.Context) error {
	var address entity.ShippingAddress
	if err := bind(c, &address); err != nil {
		return err
	}

	return h.respond(c, ignore(h.cart.CalculateShipping(c.Request().Context(), address)))
}

// Checkout places the order and returns it; the local cart is emptied.
func (h *CartHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	order, err := h.cart.Checkout(c.Request().Context(), repository.CheckoutParams{
		ShippingAddress: req.ShippingAddress,
		PaymentMethodID: req.PaymentMethodID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, order)
}

func (h *CartHandler) respond(c echo.Context, err error) error {
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, h.cart.State())
}

// ignore drops the returned value of a slice thunk; responses render the
// committed slice state instead.
func ignore[T any](_ T, err error) error {
	return err
}
