package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/learnhub/internal/domain"
)

var _ rewardsService = &rewardsServiceMock{}

type rewardsServiceMock struct {
	ListRewardsFunc     func(ctx context.Context) ([]domain.Reward, error)
	RedeemFunc          func(ctx context.Context, rewardID uuid.UUID) (*domain.Redemption, error)
	ListRedemptionsFunc func(ctx context.Context, limit int) ([]domain.Redemption, error)

	calls struct {
		ListRewards []struct {
			Ctx context.Context
		}
		Redeem []struct {
			Ctx      context.Context
			RewardID uuid.UUID
		}
		ListRedemptions []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockListRewards     sync.RWMutex
	lockRedeem          sync.RWMutex
	lockListRedemptions sync.RWMutex
}

func (mock *rewardsServiceMock) ListRewards(ctx context.Context) ([]domain.Reward, error) {
	if mock.ListRewardsFunc == nil {
		panic("rewardsServiceMock.ListRewardsFunc: method is nil but rewardsService.ListRewards was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockListRewards.Lock()
	mock.calls.ListRewards = append(mock.calls.ListRewards, callInfo)
	mock.lockListRewards.Unlock()
	return mock.ListRewardsFunc(ctx)
}

func (mock *rewardsServiceMock) ListRewardsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListRewards.RLock()
	calls := mock.calls.ListRewards
	mock.lockListRewards.RUnlock()
	return calls
}

func (mock *rewardsServiceMock) Redeem(ctx context.Context, rewardID uuid.UUID) (*domain.Redemption, error) {
	if mock.RedeemFunc == nil {
		panic("rewardsServiceMock.RedeemFunc: method is nil but rewardsService.Redeem was just called")
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

func (mock *rewardsServiceMock) RedeemCalls() []struct {
	Ctx      context.Context
	RewardID uuid.UUID
} {
	mock.lockRedeem.RLock()
	calls := mock.calls.Redeem
	mock.lockRedeem.RUnlock()
	return calls
}

func (mock *rewardsServiceMock) ListRedemptions(ctx context.Context, limit int) ([]domain.Redemption, error) {
	if mock.ListRedemptionsFunc == nil {
		panic("rewardsServiceMock.ListRedemptionsFunc: method is nil but rewardsService.ListRedemptions was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRedemptions.Lock()
	mock.calls.ListRedemptions = append(mock.calls.ListRedemptions, callInfo)
	mock.lockListRedemptions.Unlock()
	return mock.ListRedemptionsFunc(ctx, limit)
}

func (mock *rewardsServiceMock) ListRedemptionsCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRedemptions.RLock()
	calls := mock.calls.ListRedemptions
	mock.lockListRedemptions.RUnlock()
	return calls
}
