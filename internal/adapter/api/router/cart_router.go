package router

import (
	"feriavirtual/internal/adapter/api/handler"
	"feriavirtual/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/v1/cart")
	cart.Use(authMiddleware.Authenticate)
	cart.Use(roleMiddleware.BuyerOnly)
	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddToCart)
	cart.DELETE("/items/:productId", cartHandler.RemoveFromCart)
	cart.POST("/checkout", cartHandler.Checkout)
}
