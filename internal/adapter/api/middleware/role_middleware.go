package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"barterex/internal/domain/entity"
	"barterex/internal/domain/repository"
)

type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

// Require gates a route group to one role. Admins pass every gate.
func (m *RoleMiddleware) Require(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			user, err := m.userRepo.GetByID(c.Request().Context(), uid)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify role")
			}

			if user.Role != role && user.Role != entity.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, role+" role required")
			}

			return next(c)
		}
	}
}
