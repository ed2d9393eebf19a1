package rewards

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/learnhub/internal/domain"
)

var _ rewardRepo = &rewardRepoMock{}

type rewardRepoMock struct {
	ListRewardsFunc     func(ctx context.Context, includeInactive bool) ([]domain.Reward, error)
	GetRewardFunc       func(ctx context.Context, id uuid.UUID) (*domain.Reward, error)
	RedeemFunc          func(ctx context.Context, rewardID uuid.UUID) (*domain.Redemption, error)
	ListRedemptionsFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Redemption, error)

	calls struct {
		ListRewards []struct {
			Ctx             context.Context
			IncludeInactive bool
		}
		GetReward []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Redeem []struct {
			Ctx      context.Context
			RewardID uuid.UUID
		}
		ListRedemptions []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockListRewards     sync.RWMutex
	lockGetReward       sync.RWMutex
	lockRedeem          sync.RWMutex
	lockListRedemptions sync.RWMutex
}

func (mock *rewardRepoMock) ListRewards(ctx context.Context, includeInactive bool) ([]domain.Reward, error) {
	if mock.ListRewardsFunc == nil {
		panic("rewardRepoMock.ListRewardsFunc: method is nil but rewardRepo.ListRewards was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		IncludeInactive bool
	}{Ctx: ctx, IncludeInactive: includeInactive}
	mock.lockListRewards.Lock()
	mock.calls.ListRewards = append(mock.calls.ListRewards, callInfo)
	mock.lockListRewards.Unlock()
	return mock.ListRewardsFunc(ctx, includeInactive)
}

func (mock *rewardRepoMock) ListRewardsCalls() []struct {
	Ctx             context.Context
	IncludeInactive bool
} {
	mock.lockListRewards.RLock()
	calls := mock.calls.ListRewards
	mock.lockListRewards.RUnlock()
	return calls
}

func (mock *rewardRepoMock) GetReward(ctx context.Context, id uuid.UUID) (*domain.Reward, error) {
	if mock.GetRewardFunc == nil {
		panic("rewardRepoMock.GetRewardFunc: method is nil but rewardRepo.GetReward was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetReward.Lock()
	mock.calls.GetReward = append(mock.calls.GetReward, callInfo)
	mock.lockGetReward.Unlock()
	return mock.GetRewardFunc(ctx, id)
}

func (mock *rewardRepoMock) GetRewardCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetReward.RLock()
	calls := mock.calls.GetReward
	mock.lockGetReward.RUnlock()
	return calls
}

func (mock *rewardRepoMock) Redeem(ctx context.Context, rewardID uuid.UUID) (*domain.Redemption, error) {
	if mock.RedeemFunc == nil {
		panic("rewardRepoMock.RedeemFunc: method is nil but rewardRepo.Redeem was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		RewardID uuid.UUID
	}{Ctx: ctx, RewardID: rewardID}
	mock.lockRedeem.Lock()
	mock.calls.Redeem = append(mock.calls.Redeem, callInfo)
	mock.lockRedeem.Unlock()
	return mock.RedeemFunc(ctx, rewardID)
}

func (mock *rewardRepoMock) RedeemCalls() []struct {
	Ctx      context.Context
	RewardID uuid.UUID
} {
	mock.lockRedeem.RLock()
	calls := mock.calls.Redeem
	mock.lockRedeem.RUnlock()
	return calls
}

func (mock *rewardRepoMock) ListRedemptions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Redemption, error) {
	if mock.ListRedemptionsFunc == nil {
		panic("rewardRepoMock.ListRedemptionsFunc: method is nil but rewardRepo.ListRedemptions was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListRedemptions.Lock()
	mock.calls.ListRedemptions = append(mock.calls.ListRedemptions, callInfo)
	mock.lockListRedemptions.Unlock()
	return mock.ListRedemptionsFunc(ctx, userID, limit)
}

func (mock *rewardRepoMock) ListRedemptionsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListRedemptions.RLock()
	calls := mock.calls.ListRedemptions
	mock.lockListRedemptions.RUnlock()
	return calls
}
