package middleware

import (
	"net/http"

	"feriavirtual/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type RoleMiddleware struct{}

func NewRoleMiddleware() *RoleMiddleware {
	return &RoleMiddleware{}
}

func (m *RoleMiddleware) require(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actorRole, ok := c.Get("actor_role").(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			if actorRole != role {
				return echo.NewHTTPError(http.StatusForbidden, role+" privileges required")
			}
			return next(c)
		}
	}
}

func (m *RoleMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(entity.RoleAdmin)(next)
}

func (m *RoleMiddleware) SellerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(entity.RoleSeller)(next)
}

func (m *RoleMiddleware) BuyerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(entity.RoleBuyer)(next)
}
