package handler

import (
	"github.com/labstack/echo/v4"

	"barterex/internal/usecase"
	"barterex/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type createChatRequest struct {
	BarterID       string   `json:"barter_id"`
	HireID         string   `json:"hire_id"`
	Participants   []string `json:"participants" validate:"required,min=2"`
	InitialMessage string   `json:"initial_message"`
}

func (h *ChatHandler) CreateChat(c echo.Context) error {
	var req createChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	chat, err := h.chatUseCase.CreateChat(c.Request().Context(), userID, usecase.CreateChatInput{
		BarterID:       req.BarterID,
		HireID:         req.HireID,
		Participants:   req.Participants,
		InitialMessage: req.InitialMessage,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Chat created", chat)
}

func (h *ChatHandler) ListChats(c echo.Context) error {
	userID := c.Get("uid").(string)

	chats, err := h.chatUseCase.ListChats(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Chats retrieved", chats)
}

func (h *ChatHandler) GetChat(c echo.Context) error {
	userID := c.Get("uid").(string)
	chatID := c.Param("id")

	chat, err := h.chatUseCase.GetChat(c.Request().Context(), userID, chatID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Chat retrieved", chat)
}

func (h *ChatHandler) GetChatMessages(c echo.Context) error {
	userID := c.Get("uid").(string)
	chatID := c.Param("id")

	messages, err := h.chatUseCase.GetChatMessages(c.Request().Context(), userID, chatID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Messages retrieved", messages)
}

func (h *ChatHandler) DeleteChat(c echo.Context) error {
	userID := c.Get("uid").(string)
	chatID := c.Param("id")

	if err := h.chatUseCase.DeleteChat(c.Request().Context(), userID, chatID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Chat deleted", nil)
}
