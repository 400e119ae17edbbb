package router

import (
	"feriavirtual/internal/adapter/api/handler"
	"feriavirtual/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupClaimRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	claimHandler := handler.GetClaimHandler()

	claims := e.Group("/v1/claims")
	claims.Use(authMiddleware.Authenticate)
	claims.POST("", claimHandler.Create, roleMiddleware.BuyerOnly)
	claims.GET("", claimHandler.ListMine, roleMiddleware.BuyerOnly)
	claims.GET("/received", claimHandler.ListForSeller, roleMiddleware.SellerOnly)

	admin := e.Group("/v1/admin/claims")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", claimHandler.ListAll)
	admin.PATCH("/:id/resolve", claimHandler.Resolve)
}
