package handler

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "barterex/internal/infrastructure/websocket"
	"barterex/internal/usecase"
	"barterex/pkg/errors"
	"barterex/pkg/logger"
	"barterex/pkg/response"
)

// WebSocketHandler is the chat gateway: it authenticates the handshake, binds
// the verified identity to the connection and dispatches joinChat/sendMessage
// events.
type WebSocketHandler struct {
	wsManager      *ws.Manager
	messageUseCase *usecase.MessageUseCase
	jwtSecret      string
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Restrict in production deployments.
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, messageUseCase *usecase.MessageUseCase, jwtSecret string) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:      wsManager,
		messageUseCase: messageUseCase,
		jwtSecret:      jwtSecret,
	}
}

type socketClaims struct {
	jwt.RegisteredClaims
}

// authenticateHandshake extracts and verifies the bearer token from the
// handshake request. The connection's identity is fixed here; no refresh or
// rotation afterwards.
func (h *WebSocketHandler) authenticateHandshake(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.Unauthorized("no token provided", nil)
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.Unauthorized("invalid authorization format", nil)
	}

	claims := &socketClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("unexpected signing method", nil)
		}
		return []byte(h.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		logger.Warn("WebSocket handshake rejected: %v", err)
		return "", errors.Unauthorized("invalid token", err)
	}
	if claims.Subject == "" {
		return "", errors.Unauthorized("token has no subject", nil)
	}

	return claims.Subject, nil
}

// HandleWebSocket upgrades the connection after a successful handshake
// authentication and runs the read loop. Rejections happen before the
// upgrade, so an unauthenticated client never reaches an event handler.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	userID, err := h.authenticateHandshake(c)
	if err != nil {
		return response.Error(c, err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager, h.dispatch)
	go client.WritePump()

	return nil
}

// dispatch routes one inbound frame. Failures are reported to the
// originating connection only, as a messageError event carrying the error
// code.
func (h *WebSocketHandler) dispatch(client *ws.Client, payload []byte) {
	var event ws.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		logger.Warn("WebSocket: malformed frame from %s: %v", client.UserID, err)
		h.sendError(client, errors.Validation("invalid event format", err))
		return
	}

	switch event.Type {
	case ws.EventJoinChat:
		h.handleJoinChat(client, event.Data)
	case ws.EventSendMessage:
		h.handleSendMessage(client, event.Data)
	default:
		logger.Warn("WebSocket: unknown event type %q from %s", event.Type, client.UserID)
		h.sendError(client, errors.Validation("unknown event type", nil))
	}
}

func (h *WebSocketHandler) handleJoinChat(client *ws.Client, data json.RawMessage) {
	var join ws.JoinChatData
	if err := json.Unmarshal(data, &join); err != nil || join.ChatID == "" {
		h.sendError(client, errors.Validation("chat_id is required", err))
		return
	}

	if client.UserID == "" {
		h.sendError(client, errors.Unauthorized("connection is not authenticated", nil))
		return
	}

	h.wsManager.JoinRoom(join.ChatID, client)
	logger.Info("WebSocket: client %s joined chat room %s", client.UserID, join.ChatID)
}

func (h *WebSocketHandler) handleSendMessage(client *ws.Client, data json.RawMessage) {
	var send ws.SendMessageData
	if err := json.Unmarshal(data, &send); err != nil {
		h.sendError(client, errors.Validation("invalid sendMessage payload", err))
		return
	}

	// The claimed owner must be the identity bound at handshake time.
	if send.OwnerID != client.UserID {
		h.sendError(client, errors.Forbidden("not authorized to send this message", nil))
		return
	}

	// The lifecycle service broadcasts newMessage to the room after the
	// write is durable.
	_, err := h.messageUseCase.Send(context.Background(), usecase.SendMessageInput{
		Content: send.Content,
		OwnerID: send.OwnerID,
		ChatID:  send.ChatID,
		Status:  send.Status,
	})
	if err != nil {
		logger.Error("WebSocket: send from %s to chat %s failed: %v", client.UserID, send.ChatID, err)
		h.sendError(client, err)
		return
	}
}

func (h *WebSocketHandler) sendError(client *ws.Client, err error) {
	code := "INTERNAL_ERROR"
	message := "An unexpected error occurred"
	var appErr *errors.AppError
	if goerrors.As(err, &appErr) {
		code = appErr.Code
		message = appErr.Message
	}

	// Delivered to the originating connection itself, not looked up through
	// the registry; another connection of the same user never sees it.
	h.wsManager.SendToClient(client, ws.NewEvent(ws.EventMessageError, ws.MessageErrorData{
		Code:    code,
		Message: message,
	}))
}
