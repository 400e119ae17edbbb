package router

import (
	"feriavirtual/internal/adapter/api/handler"
	"feriavirtual/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/products/:id/reviews", reviewHandler.ListByProduct)
	e.POST("/v1/products/:id/reviews", reviewHandler.Create, authMiddleware.Authenticate, roleMiddleware.BuyerOnly)
}
