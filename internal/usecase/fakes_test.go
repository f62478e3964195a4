package usecase

import (
	"context"
	"fmt"
	"time"

	"barterex/internal/domain/entity"
	"barterex/internal/domain/repository"
	"barterex/pkg/errors"
)

// In-memory repository fakes backing the usecase tests. They mirror the
// lookup semantics of the real adapters: absent ids map to NOT_FOUND and
// aggregate queries over empty data return zero values.

type fakeChatRepo struct {
	chats    map[string]*entity.Chat
	messages map[string]*entity.Message
	seq      int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		chats:    make(map[string]*entity.Chat),
		messages: make(map[string]*entity.Message),
	}
}

func (f *fakeChatRepo) Create(ctx context.Context, chat *entity.Chat) error {
	f.seq++
	chat.ID = fmt.Sprintf("chat-%d", f.seq)
	chat.CreatedAt = time.Now()
	chat.UpdatedAt = chat.CreatedAt
	f.chats[chat.ID] = chat
	return nil
}

func (f *fakeChatRepo) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	chat, ok := f.chats[id]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}
	return chat, nil
}

func (f *fakeChatRepo) ListByUserID(ctx context.Context, userID string) ([]*entity.Chat, error) {
	var chats []*entity.Chat
	for _, chat := range f.chats {
		if chat.HasParticipant(userID) {
			chats = append(chats, chat)
		}
	}
	return chats, nil
}

func (f *fakeChatRepo) Update(ctx context.Context, chat *entity.Chat) error {
	if _, ok := f.chats[chat.ID]; !ok {
		return errors.NotFound("Chat", nil)
	}
	chat.UpdatedAt = time.Now()
	f.chats[chat.ID] = chat
	return nil
}

func (f *fakeChatRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.chats[id]; !ok {
		return errors.NotFound("Chat", nil)
	}
	delete(f.chats, id)
	return nil
}

func (f *fakeChatRepo) CreateMessage(ctx context.Context, message *entity.Message) error {
	f.seq++
	message.ID = fmt.Sprintf("msg-%d", f.seq)
	message.CreatedAt = time.Now()
	f.messages[message.ID] = message
	return nil
}

func (f *fakeChatRepo) GetMessageByID(ctx context.Context, messageID string) (*entity.Message, error) {
	message, ok := f.messages[messageID]
	if !ok {
		return nil, errors.NotFound("Message", nil)
	}
	return message, nil
}

func (f *fakeChatRepo) UpdateMessage(ctx context.Context, message *entity.Message) error {
	if _, ok := f.messages[message.ID]; !ok {
		return errors.NotFound("Message", nil)
	}
	f.messages[message.ID] = message
	return nil
}

func (f *fakeChatRepo) DeleteMessage(ctx context.Context, chatID, messageID string) error {
	delete(f.messages, messageID)
	return nil
}

func (f *fakeChatRepo) ListMessagesByChat(ctx context.Context, chatID string) ([]*entity.Message, error) {
	var messages []*entity.Message
	for _, message := range f.messages {
		if message.ChatID == chatID {
			messages = append(messages, message)
		}
	}
	return messages, nil
}

func (f *fakeChatRepo) ListMessagesByOwner(ctx context.Context, ownerID string) ([]*repository.OwnedMessage, error) {
	var owned []*repository.OwnedMessage
	for _, message := range f.messages {
		if message.OwnerID == ownerID {
			owned = append(owned, &repository.OwnedMessage{
				Message: message,
				Chat:    f.chats[message.ChatID],
			})
		}
	}
	return owned, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateTier(ctx context.Context, userID string, tierID int64) error {
	user, ok := f.users[userID]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.TierID = tierID
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

type fakeTierRepo struct {
	tiers []*entity.Tier
}

func (f *fakeTierRepo) GetByID(ctx context.Context, id int64) (*entity.Tier, error) {
	for _, tier := range f.tiers {
		if tier.ID == id {
			return tier, nil
		}
	}
	return nil, errors.NotFound("Tier", nil)
}

func (f *fakeTierRepo) ListOrdered(ctx context.Context) ([]*entity.Tier, error) {
	return f.tiers, nil
}

type fakeBarterRepo struct {
	barters []*entity.Barter
}

func (f *fakeBarterRepo) CountCompletedByProposer(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, barter := range f.barters {
		if barter.ProposerID == userID && barter.Status == entity.BarterStatusCompleted {
			count++
		}
	}
	return count, nil
}

func (f *fakeBarterRepo) CountByParticipant(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, barter := range f.barters {
		if barter.ProposerID == userID || barter.ResponderID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBarterRepo) CountByBrokerGroupedByStatus(ctx context.Context, brokerID string) (map[string]int64, error) {
	grouped := make(map[string]int64)
	for _, barter := range f.barters {
		if barter.BrokerID == brokerID {
			grouped[barter.Status]++
		}
	}
	return grouped, nil
}

type fakeHireRepo struct {
	hires []*entity.Hire
}

func (f *fakeHireRepo) SumCompletedBudget(ctx context.Context, brokerID string) (float64, int64, error) {
	var total float64
	var count int64
	for _, hire := range f.hires {
		if hire.BrokerID == brokerID && hire.Status == entity.HireStatusCompleted {
			total += hire.Budget
			count++
		}
	}
	return total, count, nil
}

type fakeRatingRepo struct {
	ratings []*entity.Rating
}

func (f *fakeRatingRepo) Aggregate(ctx context.Context, brokerID string) (float64, int64, error) {
	var sum float64
	var count int64
	for _, rating := range f.ratings {
		if rating.BrokerID == brokerID {
			sum += float64(rating.Value)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}
