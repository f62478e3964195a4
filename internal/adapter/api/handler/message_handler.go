package handler

import (
	"github.com/labstack/echo/v4"

	"barterex/internal/usecase"
	"barterex/pkg/errors"
	"barterex/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required"`
	OwnerID string `json:"owner_id" validate:"required"`
	ChatID  string `json:"chat_id" validate:"required"`
	Status  string `json:"status" validate:"omitempty,oneof=sent received read"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	// Owner/identity matching is enforced here at the boundary, not in the
	// lifecycle service.
	userID := c.Get("uid").(string)
	if req.OwnerID != userID {
		return response.Error(c, errors.Forbidden("Not authorized to send this message", nil))
	}

	message, err := h.messageUseCase.Send(c.Request().Context(), usecase.SendMessageInput{
		Content: req.Content,
		OwnerID: req.OwnerID,
		ChatID:  req.ChatID,
		Status:  req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Message sent", message)
}

func (h *MessageHandler) UpdateStatus(c echo.Context) error {
	messageID := c.Param("id")

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.messageUseCase.UpdateStatus(c.Request().Context(), messageID, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Message status updated", message)
}

func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	messageID := c.Param("id")

	if err := h.messageUseCase.Delete(c.Request().Context(), messageID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Message deleted", nil)
}

func (h *MessageHandler) ListUserMessages(c echo.Context) error {
	userID := c.Get("uid").(string)

	messages, err := h.messageUseCase.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, "Messages retrieved", messages)
}
