package handler

import (
	"time"

	"feriavirtual/internal/usecase"
	"feriavirtual/pkg/response"

	"github.com/labstack/echo/v4"
)

type PromotionHandler struct {
	promotionUseCase *usecase.PromotionUseCase
}

func NewPromotionHandler(promotionUseCase *usecase.PromotionUseCase) *PromotionHandler {
	return &PromotionHandler{
		promotionUseCase: promotionUseCase,
	}
}

type promotionRequest struct {
	Name            string    `json:"name" validate:"required"`
	Kind            string    `json:"kind" validate:"required,oneof=coupon raffle presale"`
	Code            string    `json:"code"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discount_percent" validate:"required,min=1,max=100"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
	UsageLimit      int       `json:"usage_limit" validate:"gte=0"`
	Conditions      string    `json:"conditions"`
}

func (r promotionRequest) toInput() usecase.PromotionInput {
	return usecase.PromotionInput{
		Name:            r.Name,
		Kind:            r.Kind,
		Code:            r.Code,
		Description:     r.Description,
		DiscountPercent: r.DiscountPercent,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		UsageLimit:      r.UsageLimit,
		Conditions:      r.Conditions,
	}
}

func (h *PromotionHandler) ListMine(c echo.Context) error {
	sellerEmail := c.Get("actor_email").(string)
	views, err := h.promotionUseCase.ListMine(c.Request().Context(), sellerEmail)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, views)
}

func (h *PromotionHandler) Create(c echo.Context) error {
	var req promotionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerEmail := c.Get("actor_email").(string)
	promotion, err := h.promotionUseCase.Create(c.Request().Context(), sellerEmail, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, promotion)
}

func (h *PromotionHandler) Update(c echo.Context) error {
	var req promotionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerEmail := c.Get("actor_email").(string)
	promotion, err := h.promotionUseCase.Update(c.Request().Context(), c.Param("id"), sellerEmail, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, promotion)
}

func (h *PromotionHandler) Delete(c echo.Context) error {
	sellerEmail := c.Get("actor_email").(string)
	if err := h.promotionUseCase.Delete(c.Request().Context(), c.Param("id"), sellerEmail); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": c.Param("id")})
}

func (h *PromotionHandler) Validate(c echo.Context) error {
	code := c.QueryParam("code")
	promotion, err := h.promotionUseCase.ValidateCoupon(c.Request().Context(), code)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, promotion)
}
