package usecase

import (
	"context"
	"time"

	"barterex/internal/domain/entity"
	"barterex/internal/domain/repository"
	"barterex/pkg/errors"
	"barterex/pkg/logger"
)

type ChatUseCase struct {
	chatRepo       repository.ChatRepository
	userRepo       repository.UserRepository
	messageUseCase *MessageUseCase
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	messageUseCase *MessageUseCase,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:       chatRepo,
		userRepo:       userRepo,
		messageUseCase: messageUseCase,
	}
}

type CreateChatInput struct {
	BarterID       string
	HireID         string
	Participants   []string
	InitialMessage string
}

// CreateChat opens a conversation bound to exactly one transactional context,
// either a barter negotiation or a hire engagement.
func (uc *ChatUseCase) CreateChat(ctx context.Context, actorID string, input CreateChatInput) (*entity.Chat, error) {
	chat := &entity.Chat{
		BarterID:     input.BarterID,
		HireID:       input.HireID,
		Participants: input.Participants,
	}

	if !chat.HasValidContext() {
		return nil, errors.Validation("chat must reference exactly one of barter_id or hire_id", nil)
	}
	if len(input.Participants) < 2 {
		return nil, errors.Validation("chat requires at least two participants", nil)
	}
	if !chat.HasParticipant(actorID) {
		return nil, errors.Forbidden("You must be a participant of the chat you create", nil)
	}

	for _, participantID := range input.Participants {
		if _, err := uc.userRepo.GetByID(ctx, participantID); err != nil {
			logger.Warn("CreateChat: participant %s lookup failed: %v", participantID, err)
			return nil, err
		}
	}

	chat.LastMessageAt = time.Now()
	if err := uc.chatRepo.Create(ctx, chat); err != nil {
		logger.Error("CreateChat: failed to create chat: %v", err)
		return nil, err
	}

	if input.InitialMessage != "" {
		if _, err := uc.messageUseCase.Send(ctx, SendMessageInput{
			Content: input.InitialMessage,
			OwnerID: actorID,
			ChatID:  chat.ID,
		}); err != nil {
			logger.Error("CreateChat: failed to send initial message for chat %s: %v", chat.ID, err)
			return nil, err
		}
		chat.LastMessage = input.InitialMessage
	}

	return chat, nil
}

func (uc *ChatUseCase) GetChat(ctx context.Context, actorID, chatID string) (*entity.Chat, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(actorID) {
		return nil, errors.Forbidden("You are not a participant in this chat", nil)
	}

	return chat, nil
}

func (uc *ChatUseCase) ListChats(ctx context.Context, actorID string) ([]*entity.Chat, error) {
	return uc.chatRepo.ListByUserID(ctx, actorID)
}

func (uc *ChatUseCase) GetChatMessages(ctx context.Context, actorID, chatID string) ([]*entity.Message, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(actorID) {
		return nil, errors.Forbidden("You are not a participant in this chat", nil)
	}

	return uc.chatRepo.ListMessagesByChat(ctx, chatID)
}

// DeleteChat removes the chat aggregate. Messages under it are deleted
// independently; no cascade is guaranteed.
func (uc *ChatUseCase) DeleteChat(ctx context.Context, actorID, chatID string) error {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return err
	}

	if !chat.HasParticipant(actorID) {
		return errors.Forbidden("You are not a participant in this chat", nil)
	}

	if err := uc.chatRepo.Delete(ctx, chatID); err != nil {
		logger.Error("DeleteChat: failed to delete chat %s: %v", chatID, err)
		return err
	}

	return nil
}
