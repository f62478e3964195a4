package router

import (
	"github.com/labstack/echo/v4"

	"barterex/internal/adapter/api/handler"
	"barterex/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, authMiddleware *middleware.AuthMiddleware) {
	chatGroup := e.Group("/v1/chats")
	chatGroup.Use(authMiddleware.Authenticate)

	chatGroup.POST("", chatHandler.CreateChat)
	chatGroup.GET("", chatHandler.ListChats)
	chatGroup.GET("/:id", chatHandler.GetChat)
	chatGroup.GET("/:id/messages", chatHandler.GetChatMessages)
	chatGroup.DELETE("/:id", chatHandler.DeleteChat)
}
