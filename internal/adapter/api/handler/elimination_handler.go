package handler

import (
	"feriavirtual/internal/usecase"
	"feriavirtual/pkg/response"

	"github.com/labstack/echo/v4"
)

type EliminationHandler struct {
	eliminationUseCase *usecase.EliminationUseCase
}

func NewEliminationHandler(eliminationUseCase *usecase.EliminationUseCase) *EliminationHandler {
	return &EliminationHandler{
		eliminationUseCase: eliminationUseCase,
	}
}

type eliminationRequest struct {
	SellerEmail         string   `json:"seller_email" validate:"required,email"`
	SelectedReason      string   `json:"selected_reason" validate:"required"`
	DetailedDescription string   `json:"detailed_description" validate:"required,min=50"`
	Evidence            string   `json:"evidence"`
	ComplaintLinks      []string `json:"complaint_links"`
}

func (h *EliminationHandler) Create(c echo.Context) error {
	var req eliminationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminEmail := c.Get("actor_email").(string)
	record, err := h.eliminationUseCase.Eliminate(c.Request().Context(), adminEmail, usecase.EliminationInput{
		SellerEmail:         req.SellerEmail,
		SelectedReason:      req.SelectedReason,
		DetailedDescription: req.DetailedDescription,
		Evidence:            req.Evidence,
		ComplaintLinks:      req.ComplaintLinks,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, record)
}

func (h *EliminationHandler) List(c echo.Context) error {
	records, err := h.eliminationUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, records)
}

type reactivateRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *EliminationHandler) Reactivate(c echo.Context) error {
	var req reactivateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	record, err := h.eliminationUseCase.Reactivate(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, record)
}
