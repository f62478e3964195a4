package usecase

import (
	"context"

	"barterex/internal/domain/entity"
	"barterex/internal/domain/repository"
	"barterex/pkg/errors"
	"barterex/pkg/logger"
)

// TierUseCase computes barterer progression. The read path measures progress
// against the current tier from completed barters the user proposed; the
// write path promotes from the unfiltered count across both sides of the
// user's trading history. The asymmetry between the two paths is deliberate.
type TierUseCase struct {
	userRepo       repository.UserRepository
	tierRepo       repository.TierRepository
	barterRepo     repository.BarterRepository
	promoteHighest bool
}

func NewTierUseCase(
	userRepo repository.UserRepository,
	tierRepo repository.TierRepository,
	barterRepo repository.BarterRepository,
	promoteHighest bool,
) *TierUseCase {
	return &TierUseCase{
		userRepo:       userRepo,
		tierRepo:       tierRepo,
		barterRepo:     barterRepo,
		promoteHighest: promoteHighest,
	}
}

type TierProgress struct {
	CurrentTier      string `json:"currentTier"`
	TierRequirement  int64  `json:"tierRequirement"`
	CompletedBarters int64  `json:"completedBarters"`
	Progress         int64  `json:"progress"`
}

type TierEvaluation struct {
	Updated bool   `json:"updated"`
	Tier    string `json:"tier"`
	Message string `json:"message"`
}

// GetProgress reports how far the user is into their current tier.
// A zero requirement counts as already satisfied.
func (uc *TierUseCase) GetProgress(ctx context.Context, userID string) (*TierProgress, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tier, err := uc.currentTier(ctx, user)
	if err != nil {
		return nil, err
	}

	completed, err := uc.barterRepo.CountCompletedByProposer(ctx, userID)
	if err != nil {
		return nil, err
	}

	var progress int64 = 100
	if tier.Requirement > 0 {
		progress = 100 * completed / tier.Requirement
		if progress > 100 {
			progress = 100
		}
	}

	return &TierProgress{
		CurrentTier:      tier.Name,
		TierRequirement:  tier.Requirement,
		CompletedBarters: completed,
		Progress:         progress,
	}, nil
}

// EvaluateAndUpdate recomputes the user's tier and writes the new assignment
// back when a higher tier is reached. The default policy promotes one step:
// the first tier above the current one whose requirement the trade count
// satisfies, not the highest eligible. TIER_PROMOTE_HIGHEST switches to a
// full scan.
func (uc *TierUseCase) EvaluateAndUpdate(ctx context.Context, userID string) (*TierEvaluation, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role != entity.RoleBarterer {
		return nil, errors.Forbidden("Tier progression only applies to barterers", nil)
	}

	current, err := uc.currentTier(ctx, user)
	if err != nil {
		return nil, err
	}

	tradeCount, err := uc.barterRepo.CountByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}

	tiers, err := uc.tierRepo.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}

	var candidate *entity.Tier
	for _, tier := range tiers {
		if tier.Requirement > current.Requirement && tier.Requirement <= tradeCount {
			candidate = tier
			if !uc.promoteHighest {
				break
			}
		}
	}

	if candidate == nil {
		return &TierEvaluation{
			Updated: false,
			Tier:    current.Name,
			Message: "no update required",
		}, nil
	}

	if err := uc.userRepo.UpdateTier(ctx, userID, candidate.ID); err != nil {
		logger.Error("EvaluateAndUpdate: failed to persist tier %d for user %s: %v", candidate.ID, userID, err)
		return nil, err
	}

	logger.Info("User %s promoted from %s to %s (%d trades)", userID, current.Name, candidate.Name, tradeCount)

	return &TierEvaluation{
		Updated: true,
		Tier:    candidate.Name,
		Message: "tier updated to " + candidate.Name,
	}, nil
}

// currentTier resolves the user's tier reference; users without an
// assignment fall back to the lowest tier.
func (uc *TierUseCase) currentTier(ctx context.Context, user *entity.User) (*entity.Tier, error) {
	if user.TierID != 0 {
		return uc.tierRepo.GetByID(ctx, user.TierID)
	}

	tiers, err := uc.tierRepo.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 {
		return nil, errors.NotFound("Tier", nil)
	}
	return tiers[0], nil
}
