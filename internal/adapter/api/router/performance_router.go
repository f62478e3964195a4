package router

import (
	"github.com/labstack/echo/v4"

	"barterex/internal/adapter/api/handler"
	"barterex/internal/adapter/api/middleware"
	"barterex/internal/domain/entity"
)

func SetupPerformanceRouter(e *echo.Echo, performanceHandler *handler.PerformanceHandler, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	perfGroup := e.Group("/v1/performance")
	perfGroup.Use(authMiddleware.Authenticate)
	perfGroup.Use(roleMiddleware.Require(entity.RoleBroker))

	perfGroup.GET("/earnings", performanceHandler.GetEarnings)
	perfGroup.GET("/barters", performanceHandler.GetBarters)
	perfGroup.GET("/ratings", performanceHandler.GetRatings)
}
