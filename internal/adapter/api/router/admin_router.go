package router

import (
	"feriavirtual/internal/adapter/api/handler"
	"feriavirtual/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	sanctionHandler := handler.GetSanctionHandler()
	eliminationHandler := handler.GetEliminationHandler()
	adminHandler := handler.GetAdminHandler()
	modRequestHandler := handler.GetModificationRequestHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)

	admin.GET("/sanctions", sanctionHandler.List)
	admin.POST("/sanctions", sanctionHandler.Create)
	admin.PATCH("/sanctions/:id/revert", sanctionHandler.Revert)

	admin.GET("/eliminations", eliminationHandler.List)
	admin.POST("/eliminations", eliminationHandler.Create)
	admin.PATCH("/eliminations/:id/reactivate", eliminationHandler.Reactivate)

	admin.GET("/accounts", adminHandler.ListAccounts)
	admin.PATCH("/accounts/:email/block", adminHandler.BlockAccount)
	admin.PATCH("/accounts/:email/unblock", adminHandler.UnblockAccount)

	admin.GET("/modification-requests", modRequestHandler.ListAll)
	admin.PATCH("/modification-requests/:id", modRequestHandler.Resolve)

	myRequests := e.Group("/v1/my-products")
	myRequests.Use(authMiddleware.Authenticate)
	myRequests.Use(roleMiddleware.SellerOnly)
	myRequests.POST("/:id/modification-requests", modRequestHandler.Create)
	myRequests.GET("/modification-requests", modRequestHandler.ListMine)
}
