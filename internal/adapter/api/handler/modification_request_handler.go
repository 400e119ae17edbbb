package handler

import (
	"feriavirtual/internal/usecase"
	"feriavirtual/pkg/response"

	"github.com/labstack/echo/v4"
)

type ModificationRequestHandler struct {
	modRequestUseCase *usecase.ModificationRequestUseCase
}

func NewModificationRequestHandler(modRequestUseCase *usecase.ModificationRequestUseCase) *ModificationRequestHandler {
	return &ModificationRequestHandler{
		modRequestUseCase: modRequestUseCase,
	}
}

type modificationRequestRequest struct {
	Description string                 `json:"description"`
	Changes     map[string]interface{} `json:"changes" validate:"required"`
}

func (h *ModificationRequestHandler) Create(c echo.Context) error {
	var req modificationRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerEmail := c.Get("actor_email").(string)
	request, err := h.modRequestUseCase.Create(c.Request().Context(), sellerEmail, c.Param("id"), req.Description, req.Changes)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, request)
}

func (h *ModificationRequestHandler) ListMine(c echo.Context) error {
	sellerEmail := c.Get("actor_email").(string)
	requests, err := h.modRequestUseCase.ListMine(c.Request().Context(), sellerEmail)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, requests)
}

func (h *ModificationRequestHandler) ListAll(c echo.Context) error {
	requests, err := h.modRequestUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, requests)
}

type resolveModificationRequest struct {
	Approve bool `json:"approve"`
}

func (h *ModificationRequestHandler) Resolve(c echo.Context) error {
	var req resolveModificationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	adminEmail := c.Get("actor_email").(string)
	request, err := h.modRequestUseCase.Resolve(c.Request().Context(), c.Param("id"), adminEmail, req.Approve)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, request)
}
