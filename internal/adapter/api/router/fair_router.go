package router

import (
	"feriavirtual/internal/adapter/api/handler"
	"feriavirtual/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupFairRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	fairHandler := handler.GetFairHandler()

	fairs := e.Group("/v1/fairs")
	fairs.GET("", fairHandler.List)
	fairs.GET("/:id", fairHandler.Get)

	sellerFairs := e.Group("/v1/fairs")
	sellerFairs.Use(authMiddleware.Authenticate)
	sellerFairs.Use(roleMiddleware.SellerOnly)
	sellerFairs.POST("/:id/enroll", fairHandler.Enroll)
	sellerFairs.GET("/my-enrollments", fairHandler.MyEnrollments)

	admin := e.Group("/v1/admin/fairs")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.POST("", fairHandler.Create)
	admin.PUT("/:id", fairHandler.Update)
	admin.PATCH("/:id/activate", fairHandler.Activate)
	admin.PATCH("/:id/deactivate", fairHandler.Deactivate)
	admin.PATCH("/:id/close", fairHandler.Close)
	admin.GET("/:id/enrollments", fairHandler.ListEnrollments)
	admin.PATCH("/:id/enrollments/:seller", fairHandler.ResolveEnrollment)
}
