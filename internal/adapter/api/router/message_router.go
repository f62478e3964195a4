package router

import (
	"github.com/labstack/echo/v4"

	"barterex/internal/adapter/api/handler"
	"barterex/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, messageHandler *handler.MessageHandler, authMiddleware *middleware.AuthMiddleware) {
	messageGroup := e.Group("/v1/messages")
	messageGroup.Use(authMiddleware.Authenticate)

	messageGroup.POST("", messageHandler.SendMessage)
	messageGroup.GET("/user", messageHandler.ListUserMessages)
	messageGroup.PATCH("/:id/status", messageHandler.UpdateStatus)
	messageGroup.DELETE("/:id", messageHandler.DeleteMessage)
}
