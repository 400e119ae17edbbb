package handler

import (
	"feriavirtual/internal/usecase"
	"feriavirtual/pkg/response"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	buyerEmail := c.Get("actor_email").(string)
	items, err := h.cartUseCase.GetCart(c.Request().Context(), buyerEmail)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerEmail := c.Get("actor_email").(string)
	items, err := h.cartUseCase.AddToCart(c.Request().Context(), buyerEmail, req.ProductID, req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	buyerEmail := c.Get("actor_email").(string)
	items, err := h.cartUseCase.RemoveFromCart(c.Request().Context(), buyerEmail, c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

type checkoutRequest struct {
	CouponCode string `json:"coupon_code"`
}

func (h *CartHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	buyerEmail := c.Get("actor_email").(string)
	result, err := h.cartUseCase.Checkout(c.Request().Context(), buyerEmail, req.CouponCode)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}
