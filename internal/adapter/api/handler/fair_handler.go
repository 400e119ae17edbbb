package handler

import (
	"time"

	"feriavirtual/internal/usecase"
	"feriavirtual/pkg/response"

	"github.com/labstack/echo/v4"
)

type FairHandler struct {
	fairUseCase *usecase.FairUseCase
}

func NewFairHandler(fairUseCase *usecase.FairUseCase) *FairHandler {
	return &FairHandler{
		fairUseCase: fairUseCase,
	}
}

type fairRequest struct {
	Name             string    `json:"name" validate:"required"`
	Description      string    `json:"description"`
	StartDate        time.Time `json:"start_date" validate:"required"`
	EndDate          time.Time `json:"end_date" validate:"required"`
	Categories       []string  `json:"categories"`
	Rules            string    `json:"rules"`
	Guidelines       string    `json:"guidelines"`
	Image            string    `json:"image"`
	DiscountRangeMin int       `json:"discount_range_min"`
	DiscountRangeMax int       `json:"discount_range_max"`
}

func (r fairRequest) toInput() usecase.FairInput {
	return usecase.FairInput{
		Name:             r.Name,
		Description:      r.Description,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Categories:       r.Categories,
		Rules:            r.Rules,
		Guidelines:       r.Guidelines,
		Image:            r.Image,
		DiscountRangeMin: r.DiscountRangeMin,
		DiscountRangeMax: r.DiscountRangeMax,
	}
}

func (h *FairHandler) List(c echo.Context) error {
	fairs, err := h.fairUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fairs)
}

func (h *FairHandler) Get(c echo.Context) error {
	fair, err := h.fairUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fair)
}

func (h *FairHandler) Create(c echo.Context) error {
	var req fairRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	adminEmail := c.Get("actor_email").(string)
	fair, err := h.fairUseCase.Create(c.Request().Context(), adminEmail, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, fair)
}

func (h *FairHandler) Update(c echo.Context) error {
	var req fairRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	fair, err := h.fairUseCase.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fair)
}

func (h *FairHandler) Activate(c echo.Context) error {
	fair, err := h.fairUseCase.SetActive(c.Request().Context(), c.Param("id"), true)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fair)
}

func (h *FairHandler) Deactivate(c echo.Context) error {
	fair, err := h.fairUseCase.SetActive(c.Request().Context(), c.Param("id"), false)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fair)
}

func (h *FairHandler) Close(c echo.Context) error {
	fair, err := h.fairUseCase.Close(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, fair)
}

type enrollRequest struct {
	ProductIDs []string `json:"product_ids"`
}

func (h *FairHandler) Enroll(c echo.Context) error {
	var req enrollRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	sellerEmail := c.Get("actor_email").(string)
	enrollment, err := h.fairUseCase.Enroll(c.Request().Context(), c.Param("id"), sellerEmail, req.ProductIDs)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, enrollment)
}

func (h *FairHandler) ListEnrollments(c echo.Context) error {
	enrollments, err := h.fairUseCase.ListEnrollments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, enrollments)
}

func (h *FairHandler) MyEnrollments(c echo.Context) error {
	sellerEmail := c.Get("actor_email").(string)
	enrollments, err := h.fairUseCase.ListSellerEnrollments(c.Request().Context(), sellerEmail)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, enrollments)
}

type resolveEnrollmentRequest struct {
	Approve bool `json:"approve"`
}

func (h *FairHandler) ResolveEnrollment(c echo.Context) error {
	var req resolveEnrollmentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	enrollment, err := h.fairUseCase.ResolveEnrollment(c.Request().Context(), c.Param("id"), c.Param("seller"), req.Approve)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, enrollment)
}
