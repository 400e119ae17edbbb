package router

import (
	"feriavirtual/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware, roleMiddleware)
	SetupCartRouter(e, authMiddleware, roleMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupFairRouter(e, authMiddleware, roleMiddleware)
	SetupPromotionRouter(e, authMiddleware, roleMiddleware)
	SetupClaimRouter(e, authMiddleware, roleMiddleware)
	SetupReviewRouter(e, authMiddleware, roleMiddleware)
	SetupAdminRouter(e, authMiddleware, roleMiddleware)
	SetupHealthRouter(e)
}
