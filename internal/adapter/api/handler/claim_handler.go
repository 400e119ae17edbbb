package handler

import (
	"feriavirtual/internal/usecase"
	"feriavirtual/pkg/response"

	"github.com/labstack/echo/v4"
)

type ClaimHandler struct {
	claimUseCase *usecase.ClaimUseCase
}

func NewClaimHandler(claimUseCase *usecase.ClaimUseCase) *ClaimHandler {
	return &ClaimHandler{
		claimUseCase: claimUseCase,
	}
}

type claimRequest struct {
	SellerEmail string `json:"seller_email" validate:"required,email"`
	ProductID   string `json:"product_id"`
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (h *ClaimHandler) Create(c echo.Context) error {
	var req claimRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerEmail := c.Get("actor_email").(string)
	claim, err := h.claimUseCase.Create(c.Request().Context(), buyerEmail, usecase.ClaimInput{
		SellerEmail: req.SellerEmail,
		ProductID:   req.ProductID,
		Subject:     req.Subject,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, claim)
}

func (h *ClaimHandler) ListMine(c echo.Context) error {
	buyerEmail := c.Get("actor_email").(string)
	claims, err := h.claimUseCase.ListMine(c.Request().Context(), buyerEmail)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, claims)
}

func (h *ClaimHandler) ListForSeller(c echo.Context) error {
	sellerEmail := c.Get("actor_email").(string)
	claims, err := h.claimUseCase.ListForSeller(c.Request().Context(), sellerEmail)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, claims)
}

func (h *ClaimHandler) ListAll(c echo.Context) error {
	claims, err := h.claimUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, claims)
}

type resolveClaimRequest struct {
	Resolution string `json:"resolution" validate:"required"`
}

func (h *ClaimHandler) Resolve(c echo.Context) error {
	var req resolveClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	claim, err := h.claimUseCase.Resolve(c.Request().Context(), c.Param("id"), req.Resolution)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, claim)
}
