package router

import (
	"feriavirtual/internal/adapter/api/handler"
	"feriavirtual/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPromotionRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	promotionHandler := handler.GetPromotionHandler()

	myPromotions := e.Group("/v1/my-promotions")
	myPromotions.Use(authMiddleware.Authenticate)
	myPromotions.Use(roleMiddleware.SellerOnly)
	myPromotions.GET("", promotionHandler.ListMine)
	myPromotions.POST("", promotionHandler.Create)
	myPromotions.PUT("/:id", promotionHandler.Update)
	myPromotions.DELETE("/:id", promotionHandler.Delete)

	validate := e.Group("/v1/promotions")
	validate.Use(authMiddleware.Authenticate)
	validate.GET("/validate", promotionHandler.Validate)
}
