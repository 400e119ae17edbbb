package handler

import (
	"feriavirtual/internal/usecase"
	"feriavirtual/pkg/response"
	"feriavirtual/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productRequest struct {
	Name            string  `json:"name" validate:"required"`
	Price           float64 `json:"price" validate:"gte=0"`
	Stock           int     `json:"stock" validate:"gte=0"`
	Category        string  `json:"category" validate:"required"`
	Description     string  `json:"description"`
	Image           string  `json:"image"`
	DiscountPercent int     `json:"discount_percent" validate:"gte=0,max=100"`
}

func (r productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:            r.Name,
		Price:           r.Price,
		Stock:           r.Stock,
		Category:        r.Category,
		Description:     r.Description,
		Image:           r.Image,
		DiscountPercent: r.DiscountPercent,
	}
}

// Catalog is public: only active products from non-eliminated sellers.
func (h *ProductHandler) Catalog(c echo.Context) error {
	products, err := h.productUseCase.Catalog(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return response.Error(c, err)
	}
	params := utils.GetPaginationParams(c)
	page := utils.Paginate(products, params.Offset, params.PageSize)
	return response.Paginated(c, page, int64(len(products)), params.Page, params.PageSize)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	view, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, view)
}

func (h *ProductHandler) ListMine(c echo.Context) error {
	sellerEmail := c.Get("actor_email").(string)
	views, err := h.productUseCase.ListMine(c.Request().Context(), sellerEmail)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, views)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerEmail := c.Get("actor_email").(string)
	product, err := h.productUseCase.CreateProduct(c.Request().Context(), sellerEmail, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerEmail := c.Get("actor_email").(string)
	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), sellerEmail, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

type statusRequest struct {
	State  string `json:"state" validate:"required,oneof=active inactive deleted"`
	Reason string `json:"reason"`
}

func (h *ProductHandler) SetStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actorEmail := c.Get("actor_email").(string)
	if err := h.productUseCase.SetStatus(c.Request().Context(), c.Param("id"), actorEmail, req.State, req.Reason); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": c.Param("id"), "state": req.State})
}

func (h *ProductHandler) StatusHistory(c echo.Context) error {
	history, err := h.productUseCase.StatusHistory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, history)
}
