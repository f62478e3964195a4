package usecase

import (
	"context"

	"barterex/internal/domain/entity"
	"barterex/internal/domain/repository"
	ws "barterex/internal/infrastructure/websocket"
	"barterex/pkg/errors"
	"barterex/pkg/logger"
)

// MessageUseCase drives the message lifecycle: send, status transitions,
// delete, list-by-owner. Sender/owner identity matching is the transport
// layer's job, not this service's.
type MessageUseCase struct {
	chatRepo         repository.ChatRepository
	wsManager        *ws.Manager
	strictStatusFlow bool
}

func NewMessageUseCase(chatRepo repository.ChatRepository, wsManager *ws.Manager, strictStatusFlow bool) *MessageUseCase {
	return &MessageUseCase{
		chatRepo:         chatRepo,
		wsManager:        wsManager,
		strictStatusFlow: strictStatusFlow,
	}
}

type SendMessageInput struct {
	Content string
	OwnerID string
	ChatID  string
	Status  string
}

// Send validates and persists a message, then fans it out to the chat's room.
// The chat id is not pre-checked; an absent chat surfaces as a persistence
// failure. Status defaults to "sent" when omitted.
func (uc *MessageUseCase) Send(ctx context.Context, input SendMessageInput) (*entity.Message, error) {
	if input.Content == "" {
		return nil, errors.Validation("content must not be empty", nil)
	}
	if input.OwnerID == "" {
		return nil, errors.Validation("owner_id is required", nil)
	}
	if input.ChatID == "" {
		return nil, errors.Validation("chat_id is required", nil)
	}

	status := input.Status
	if status == "" {
		status = entity.MessageStatusSent
	} else if !entity.IsValidMessageStatus(status) {
		return nil, errors.Validation("status must be one of: sent received read", nil)
	}

	message := &entity.Message{
		ChatID:  input.ChatID,
		OwnerID: input.OwnerID,
		Content: input.Content,
		Status:  status,
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		logger.Error("Send: failed to persist message for chat %s: %v", input.ChatID, err)
		return nil, err
	}

	// Last-message tracking is best effort; the message itself is already
	// durable.
	if chat, err := uc.chatRepo.GetByID(ctx, input.ChatID); err == nil {
		chat.LastMessage = message.Content
		chat.LastMessageAt = message.CreatedAt
		if err := uc.chatRepo.Update(ctx, chat); err != nil {
			logger.Warn("Send: failed to update last message on chat %s: %v", chat.ID, err)
		}
	} else {
		logger.Warn("Send: chat %s lookup failed after persisting message %s: %v", input.ChatID, message.ID, err)
	}

	// Everyone in the room gets the persisted message, sender included.
	uc.wsManager.BroadcastToRoom(input.ChatID, ws.NewEvent(ws.EventNewMessage, message))

	return message, nil
}

// UpdateStatus rewrites a message's status. Any enum member is accepted in
// the default mode; strict mode only allows sent->received and
// received->read. Status changes are not broadcast.
func (uc *MessageUseCase) UpdateStatus(ctx context.Context, messageID, status string) (*entity.Message, error) {
	if !entity.IsValidMessageStatus(status) {
		return nil, errors.Validation("status must be one of: sent received read", nil)
	}

	message, err := uc.chatRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if uc.strictStatusFlow && message.Status != status && !entity.CanTransitionMessageStatus(message.Status, status) {
		return nil, errors.Validation("illegal status transition from "+message.Status+" to "+status, nil)
	}

	message.Status = status
	if err := uc.chatRepo.UpdateMessage(ctx, message); err != nil {
		logger.Error("UpdateStatus: failed to persist status for message %s: %v", messageID, err)
		return nil, err
	}

	return message, nil
}

func (uc *MessageUseCase) Delete(ctx context.Context, messageID string) error {
	message, err := uc.chatRepo.GetMessageByID(ctx, messageID)
	if err != nil {
		return err
	}

	if err := uc.chatRepo.DeleteMessage(ctx, message.ChatID, message.ID); err != nil {
		logger.Error("Delete: failed to delete message %s: %v", messageID, err)
		return err
	}

	return nil
}

// ListByUser returns every message the user owns, each paired with its parent
// chat reference.
func (uc *MessageUseCase) ListByUser(ctx context.Context, userID string) ([]*repository.OwnedMessage, error) {
	return uc.chatRepo.ListMessagesByOwner(ctx, userID)
}
