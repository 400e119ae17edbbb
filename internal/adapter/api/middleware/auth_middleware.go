package middleware

import (
	"net/http"

	"feriavirtual/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the persisted session slot. There is no token: the
// single session record decides who the actor is, and login simply overwrote
// it last.
type AuthMiddleware struct {
	sessionRepo repository.SessionRepository
	accountRepo repository.AccountRepository
}

func NewAuthMiddleware(sessionRepo repository.SessionRepository, accountRepo repository.AccountRepository) *AuthMiddleware {
	return &AuthMiddleware{
		sessionRepo: sessionRepo,
		accountRepo: accountRepo,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.sessionRepo.Get(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read session")
		}
		if session == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		// Re-check the account on every request so a block or elimination
		// applied after login takes effect immediately.
		account, err := m.accountRepo.GetByEmail(c.Request().Context(), session.Email)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Session account no longer exists")
		}
		if account.Blocked || account.Deleted {
			return echo.NewHTTPError(http.StatusUnauthorized, "Account is blocked")
		}

		c.Set("actor_email", account.Email)
		c.Set("actor_role", account.Role)
		c.Set("actor_name", account.Name)
		return next(c)
	}
}
