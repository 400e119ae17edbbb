package handler

import (
	"feriavirtual/internal/usecase"
	"feriavirtual/pkg/response"

	"github.com/labstack/echo/v4"
)

type SanctionHandler struct {
	sanctionUseCase *usecase.SanctionUseCase
}

func NewSanctionHandler(sanctionUseCase *usecase.SanctionUseCase) *SanctionHandler {
	return &SanctionHandler{
		sanctionUseCase: sanctionUseCase,
	}
}

type sanctionRequest struct {
	SellerEmail         string `json:"seller_email" validate:"required,email"`
	Kind                string `json:"kind" validate:"required,oneof=warning temporary-suspension permanent-ban"`
	Reason              string `json:"reason" validate:"required"`
	DetailedDescription string `json:"detailed_description"`
	DurationDays        int    `json:"duration_days"`
}

func (h *SanctionHandler) Create(c echo.Context) error {
	var req sanctionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminEmail := c.Get("actor_email").(string)
	sanction, err := h.sanctionUseCase.Create(c.Request().Context(), adminEmail, usecase.SanctionInput{
		SellerEmail:         req.SellerEmail,
		Kind:                req.Kind,
		Reason:              req.Reason,
		DetailedDescription: req.DetailedDescription,
		DurationDays:        req.DurationDays,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, sanction)
}

func (h *SanctionHandler) List(c echo.Context) error {
	if seller := c.QueryParam("seller"); seller != "" {
		sanctions, err := h.sanctionUseCase.ListBySeller(c.Request().Context(), seller)
		if err != nil {
			return response.Error(c, err)
		}
		return response.Success(c, sanctions)
	}

	sanctions, err := h.sanctionUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, sanctions)
}

type revertRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *SanctionHandler) Revert(c echo.Context) error {
	var req revertRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sanction, err := h.sanctionUseCase.Revert(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, sanction)
}
