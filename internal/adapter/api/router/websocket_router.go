package router

import (
	"github.com/labstack/echo/v4"

	"barterex/internal/adapter/api/handler"
)

// SetupWebSocketRouter registers the chat gateway endpoint. Auth lives in the
// handshake handler itself, not in middleware.
func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/ws", wsHandler.HandleWebSocket)
}
