package handler

import (
	"feriavirtual/internal/usecase"
	"feriavirtual/pkg/response"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

func (h *AdminHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.adminUseCase.ListAccounts(c.Request().Context(), c.QueryParam("role"))
	if err != nil {
		return response.Error(c, err)
	}
	for _, a := range accounts {
		a.Password = ""
	}
	return response.Success(c, accounts)
}

type blockRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *AdminHandler) BlockAccount(c echo.Context) error {
	var req blockRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	account, err := h.adminUseCase.BlockAccount(c.Request().Context(), c.Param("email"), req.Reason)
	if err != nil {
		return response.Error(c, err)
	}
	account.Password = ""
	return response.Success(c, account)
}

func (h *AdminHandler) UnblockAccount(c echo.Context) error {
	account, err := h.adminUseCase.UnblockAccount(c.Request().Context(), c.Param("email"))
	if err != nil {
		return response.Error(c, err)
	}
	account.Password = ""
	return response.Success(c, account)
}
