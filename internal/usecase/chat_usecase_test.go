package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barterex/internal/domain/entity"
	ws "barterex/internal/infrastructure/websocket"
	"barterex/pkg/errors"
)

func newChatUseCaseForTest(users ...*entity.User) (*ChatUseCase, *fakeChatRepo) {
	chatRepo := newFakeChatRepo()
	userRepo := newFakeUserRepo(users...)
	messageUseCase := NewMessageUseCase(chatRepo, ws.NewManager(), false)
	return NewChatUseCase(chatRepo, userRepo, messageUseCase), chatRepo
}

func barterUser(id string) *entity.User {
	return &entity.User{ID: id, Role: entity.RoleBarterer}
}

func TestCreateChatRequiresExactlyOneContext(t *testing.T) {
	uc, _ := newChatUseCaseForTest(barterUser("alice"), barterUser("bob"))

	cases := []CreateChatInput{
		{Participants: []string{"alice", "bob"}},
		{BarterID: "b1", HireID: "h1", Participants: []string{"alice", "bob"}},
	}
	for _, input := range cases {
		_, err := uc.CreateChat(context.Background(), "alice", input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	}
}

func TestCreateChatRequiresTwoParticipants(t *testing.T) {
	uc, _ := newChatUseCaseForTest(barterUser("alice"))

	_, err := uc.CreateChat(context.Background(), "alice", CreateChatInput{
		BarterID:     "b1",
		Participants: []string{"alice"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestCreateChatActorMustParticipate(t *testing.T) {
	uc, _ := newChatUseCaseForTest(barterUser("alice"), barterUser("bob"), barterUser("carol"))

	_, err := uc.CreateChat(context.Background(), "carol", CreateChatInput{
		BarterID:     "b1",
		Participants: []string{"alice", "bob"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCreateChatUnknownParticipant(t *testing.T) {
	uc, _ := newChatUseCaseForTest(barterUser("alice"))

	_, err := uc.CreateChat(context.Background(), "alice", CreateChatInput{
		BarterID:     "b1",
		Participants: []string{"alice", "ghost"},
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestCreateChatWithInitialMessage(t *testing.T) {
	uc, chatRepo := newChatUseCaseForTest(barterUser("alice"), barterUser("bob"))

	chat, err := uc.CreateChat(context.Background(), "alice", CreateChatInput{
		HireID:         "h1",
		Participants:   []string{"alice", "bob"},
		InitialMessage: "shall we talk terms?",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, chat.ID)
	assert.Equal(t, "shall we talk terms?", chat.LastMessage)

	messages, err := chatRepo.ListMessagesByChat(context.Background(), chat.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "alice", messages[0].OwnerID)
	assert.Equal(t, entity.MessageStatusSent, messages[0].Status)
}

func TestGetChatNonParticipant(t *testing.T) {
	uc, _ := newChatUseCaseForTest(barterUser("alice"), barterUser("bob"), barterUser("eve"))

	chat, err := uc.CreateChat(context.Background(), "alice", CreateChatInput{
		BarterID:     "b1",
		Participants: []string{"alice", "bob"},
	})
	require.NoError(t, err)

	_, err = uc.GetChat(context.Background(), "eve", chat.ID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestGetChatMessagesParticipantOnly(t *testing.T) {
	uc, _ := newChatUseCaseForTest(barterUser("alice"), barterUser("bob"), barterUser("eve"))

	chat, err := uc.CreateChat(context.Background(), "alice", CreateChatInput{
		BarterID:       "b1",
		Participants:   []string{"alice", "bob"},
		InitialMessage: "hi",
	})
	require.NoError(t, err)

	messages, err := uc.GetChatMessages(context.Background(), "bob", chat.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	_, err = uc.GetChatMessages(context.Background(), "eve", chat.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestDeleteChat(t *testing.T) {
	uc, chatRepo := newChatUseCaseForTest(barterUser("alice"), barterUser("bob"))

	chat, err := uc.CreateChat(context.Background(), "alice", CreateChatInput{
		BarterID:     "b1",
		Participants: []string{"alice", "bob"},
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteChat(context.Background(), "bob", chat.ID))

	_, err = chatRepo.GetByID(context.Background(), chat.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListChatsScopedToUser(t *testing.T) {
	uc, _ := newChatUseCaseForTest(barterUser("alice"), barterUser("bob"), barterUser("carol"))

	_, err := uc.CreateChat(context.Background(), "alice", CreateChatInput{
		BarterID:     "b1",
		Participants: []string{"alice", "bob"},
	})
	require.NoError(t, err)
	_, err = uc.CreateChat(context.Background(), "bob", CreateChatInput{
		HireID:       "h1",
		Participants: []string{"bob", "carol"},
	})
	require.NoError(t, err)

	chats, err := uc.ListChats(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, chats, 1)

	chats, err = uc.ListChats(context.Background(), "bob")
	require.NoError(t, err)
	assert.Len(t, chats, 2)
}
