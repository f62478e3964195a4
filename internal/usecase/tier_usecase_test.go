package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barterex/internal/domain/entity"
	"barterex/pkg/errors"
)

func testTiers() *fakeTierRepo {
	return &fakeTierRepo{tiers: []*entity.Tier{
		{ID: 1, Name: "Bronze", Requirement: 0},
		{ID: 2, Name: "Silver", Requirement: 10},
		{ID: 3, Name: "Gold", Requirement: 100},
	}}
}

func completedBarters(userID string, n int) []*entity.Barter {
	barters := make([]*entity.Barter, 0, n)
	for i := 0; i < n; i++ {
		barters = append(barters, &entity.Barter{
			ProposerID:  userID,
			ResponderID: "counterparty",
			Status:      entity.BarterStatusCompleted,
		})
	}
	return barters
}

func TestGetProgressZeroRequirementIsComplete(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "u1", Role: entity.RoleBarterer, TierID: 1})
	uc := NewTierUseCase(userRepo, testTiers(), &fakeBarterRepo{}, false)

	progress, err := uc.GetProgress(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "Bronze", progress.CurrentTier)
	assert.Equal(t, int64(0), progress.CompletedBarters)
	assert.Equal(t, int64(100), progress.Progress)
}

func TestGetProgressPartial(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "u1", Role: entity.RoleBarterer, TierID: 2})
	barterRepo := &fakeBarterRepo{barters: completedBarters("u1", 4)}
	uc := NewTierUseCase(userRepo, testTiers(), barterRepo, false)

	progress, err := uc.GetProgress(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "Silver", progress.CurrentTier)
	assert.Equal(t, int64(10), progress.TierRequirement)
	assert.Equal(t, int64(4), progress.CompletedBarters)
	assert.Equal(t, int64(40), progress.Progress)
}

func TestGetProgressCapsAtHundred(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "u1", Role: entity.RoleBarterer, TierID: 2})
	barterRepo := &fakeBarterRepo{barters: completedBarters("u1", 25)}
	uc := NewTierUseCase(userRepo, testTiers(), barterRepo, false)

	progress, err := uc.GetProgress(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, int64(100), progress.Progress)
}

// Only the proposing side of a completed barter counts for progress.
func TestGetProgressIgnoresRespondedBarters(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "u1", Role: entity.RoleBarterer, TierID: 2})
	barterRepo := &fakeBarterRepo{barters: []*entity.Barter{
		{ProposerID: "u1", ResponderID: "other", Status: entity.BarterStatusCompleted},
		{ProposerID: "other", ResponderID: "u1", Status: entity.BarterStatusCompleted},
		{ProposerID: "u1", ResponderID: "other", Status: entity.BarterStatusPending},
	}}
	uc := NewTierUseCase(userRepo, testTiers(), barterRepo, false)

	progress, err := uc.GetProgress(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), progress.CompletedBarters)
}

func TestGetProgressFallsBackToLowestTier(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "u1", Role: entity.RoleBarterer})
	uc := NewTierUseCase(userRepo, testTiers(), &fakeBarterRepo{}, false)

	progress, err := uc.GetProgress(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "Bronze", progress.CurrentTier)
}

func TestEvaluateRejectsNonBarterer(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "b1", Role: entity.RoleBroker})
	uc := NewTierUseCase(userRepo, testTiers(), &fakeBarterRepo{}, false)

	_, err := uc.EvaluateAndUpdate(context.Background(), "b1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

// The default policy promotes a single step even when a higher tier is also
// satisfied: 120 trades lift a Bronze user to Silver, not Gold.
func TestEvaluatePromotesOneStep(t *testing.T) {
	user := &entity.User{ID: "u1", Role: entity.RoleBarterer, TierID: 1}
	userRepo := newFakeUserRepo(user)
	barterRepo := &fakeBarterRepo{barters: completedBarters("u1", 120)}
	uc := NewTierUseCase(userRepo, testTiers(), barterRepo, false)

	evaluation, err := uc.EvaluateAndUpdate(context.Background(), "u1")

	require.NoError(t, err)
	assert.True(t, evaluation.Updated)
	assert.Equal(t, "Silver", evaluation.Tier)
	assert.Equal(t, int64(2), user.TierID)
}

func TestEvaluatePromoteHighestFlag(t *testing.T) {
	user := &entity.User{ID: "u1", Role: entity.RoleBarterer, TierID: 1}
	userRepo := newFakeUserRepo(user)
	barterRepo := &fakeBarterRepo{barters: completedBarters("u1", 120)}
	uc := NewTierUseCase(userRepo, testTiers(), barterRepo, true)

	evaluation, err := uc.EvaluateAndUpdate(context.Background(), "u1")

	require.NoError(t, err)
	assert.True(t, evaluation.Updated)
	assert.Equal(t, "Gold", evaluation.Tier)
	assert.Equal(t, int64(3), user.TierID)
}

// Re-running the recompute with an unchanged trade count is a no-op.
func TestEvaluateIsIdempotent(t *testing.T) {
	user := &entity.User{ID: "u1", Role: entity.RoleBarterer, TierID: 1}
	userRepo := newFakeUserRepo(user)
	barterRepo := &fakeBarterRepo{barters: completedBarters("u1", 55)}
	uc := NewTierUseCase(userRepo, testTiers(), barterRepo, false)

	first, err := uc.EvaluateAndUpdate(context.Background(), "u1")
	require.NoError(t, err)
	require.True(t, first.Updated)

	second, err := uc.EvaluateAndUpdate(context.Background(), "u1")

	require.NoError(t, err)
	assert.False(t, second.Updated)
	assert.Equal(t, "Silver", second.Tier)
	assert.Equal(t, "no update required", second.Message)
	assert.Equal(t, int64(2), user.TierID)
}

func TestEvaluateNoTierSatisfied(t *testing.T) {
	user := &entity.User{ID: "u1", Role: entity.RoleBarterer, TierID: 1}
	userRepo := newFakeUserRepo(user)
	barterRepo := &fakeBarterRepo{barters: completedBarters("u1", 3)}
	uc := NewTierUseCase(userRepo, testTiers(), barterRepo, false)

	evaluation, err := uc.EvaluateAndUpdate(context.Background(), "u1")

	require.NoError(t, err)
	assert.False(t, evaluation.Updated)
	assert.Equal(t, "Bronze", evaluation.Tier)
	assert.Equal(t, int64(1), user.TierID)
}

// Promotion counts every barter the user touched, both sides any status,
// unlike the progress read which only counts completed proposals.
func TestEvaluateCountsBothSides(t *testing.T) {
	user := &entity.User{ID: "u1", Role: entity.RoleBarterer, TierID: 1}
	userRepo := newFakeUserRepo(user)
	barters := make([]*entity.Barter, 0, 10)
	for i := 0; i < 5; i++ {
		barters = append(barters, &entity.Barter{ProposerID: "other", ResponderID: "u1", Status: entity.BarterStatusPending})
		barters = append(barters, &entity.Barter{ProposerID: "u1", ResponderID: "other", Status: entity.BarterStatusCancelled})
	}
	uc := NewTierUseCase(userRepo, testTiers(), &fakeBarterRepo{barters: barters}, false)

	evaluation, err := uc.EvaluateAndUpdate(context.Background(), "u1")

	require.NoError(t, err)
	assert.True(t, evaluation.Updated)
	assert.Equal(t, "Silver", evaluation.Tier)
}
