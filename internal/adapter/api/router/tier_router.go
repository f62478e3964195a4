package router

import (
	"github.com/labstack/echo/v4"

	"barterex/internal/adapter/api/handler"
	"barterex/internal/adapter/api/middleware"
	"barterex/internal/domain/entity"
)

func SetupTierRouter(e *echo.Echo, tierHandler *handler.TierHandler, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	tierGroup := e.Group("/v1/tiers")
	tierGroup.Use(authMiddleware.Authenticate)
	tierGroup.Use(roleMiddleware.Require(entity.RoleBarterer))

	tierGroup.GET("", tierHandler.GetProgress)
	tierGroup.POST("/evaluate", tierHandler.Evaluate)
}
