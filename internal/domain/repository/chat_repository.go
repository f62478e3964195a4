package repository

import (
	"context"

	"barterex/internal/domain/entity"
)

// OwnedMessage pairs a message with its parent chat reference for
// list-by-owner queries.
type OwnedMessage struct {
	Message *entity.Message `json:"message"`
	Chat    *entity.Chat    `json:"chat"`
}

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Chat, error)
	Update(ctx context.Context, chat *entity.Chat) error
	Delete(ctx context.Context, id string) error

	// Message methods. Messages live under their owning chat; lookups by
	// message id alone scan across chats.
	CreateMessage(ctx context.Context, message *entity.Message) error
	GetMessageByID(ctx context.Context, messageID string) (*entity.Message, error)
	UpdateMessage(ctx context.Context, message *entity.Message) error
	DeleteMessage(ctx context.Context, chatID, messageID string) error
	ListMessagesByChat(ctx context.Context, chatID string) ([]*entity.Message, error)
	ListMessagesByOwner(ctx context.Context, ownerID string) ([]*OwnedMessage, error)
}
