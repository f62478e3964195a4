package router

import (
	"github.com/labstack/echo/v4"

	"barterex/internal/adapter/api/handler"
)

func SetupDevRouter(e *echo.Echo, devTokenHandler *handler.DevTokenHandler, environment string) {
	if environment != "development" {
		return
	}

	e.POST("/_dev/tokens", devTokenHandler.GenerateTokens)
}
