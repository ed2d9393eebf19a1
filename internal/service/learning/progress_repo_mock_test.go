package learning

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/learnhub/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	ListByEpisodesFunc   func(ctx context.Context, userID uuid.UUID, episodeIDs []uuid.UUID) ([]domain.EpisodeProgress, error)
	ListUpdatedSinceFunc func(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
	CountCompletedFunc   func(ctx context.Context, userID uuid.UUID) (int, error)
	UpsertFunc           func(ctx context.Context, p domain.EpisodeProgress) (*domain.EpisodeProgress, error)
	GetWalletFunc        func(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetStreakFunc        func(ctx context.Context, userID uuid.UUID) (*domain.Streak, error)

	calls struct {
		ListByEpisodes []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			EpisodeIDs []uuid.UUID
		}
		ListUpdatedSince []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Since  time.Time
		}
		CountCompleted []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx context.Context
			P   domain.EpisodeProgress
		}
		GetWallet []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetStreak []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListByEpisodes   sync.RWMutex
	lockListUpdatedSince sync.RWMutex
	lockCountCompleted   sync.RWMutex
	lockUpsert           sync.RWMutex
	lockGetWallet        sync.RWMutex
	lockGetStreak        sync.RWMutex
}

func (mock *progressRepoMock) ListByEpisodes(ctx context.Context, userID uuid.UUID, episodeIDs []uuid.UUID) ([]domain.EpisodeProgress, error) {
	if mock.ListByEpisodesFunc == nil {
		panic("progressRepoMock.ListByEpisodesFunc: method is nil but progressRepo.ListByEpisodes was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		EpisodeIDs []uuid.UUID
	}{Ctx: ctx, UserID: userID, EpisodeIDs: episodeIDs}
	mock.lockListByEpisodes.Lock()
	mock.calls.ListByEpisodes = append(mock.calls.ListByEpisodes, callInfo)
	mock.lockListByEpisodes.Unlock()
	return mock.ListByEpisodesFunc(ctx, userID, episodeIDs)
}

func (mock *progressRepoMock) ListByEpisodesCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	EpisodeIDs []uuid.UUID
} {
	mock.lockListByEpisodes.RLock()
	calls := mock.calls.ListByEpisodes
	mock.lockListByEpisodes.RUnlock()
	return calls
}

func (mock *progressRepoMock) ListUpdatedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	if mock.ListUpdatedSinceFunc == nil {
		panic("progressRepoMock.ListUpdatedSinceFunc: method is nil but progressRepo.ListUpdatedSince was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Since  time.Time
	}{Ctx: ctx, UserID: userID, Since: since}
	mock.lockListUpdatedSince.Lock()
	mock.calls.ListUpdatedSince = append(mock.calls.ListUpdatedSince, callInfo)
	mock.lockListUpdatedSince.Unlock()
	return mock.ListUpdatedSinceFunc(ctx, userID, since)
}

func (mock *progressRepoMock) ListUpdatedSinceCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockListUpdatedSince.RLock()
	calls := mock.calls.ListUpdatedSince
	mock.lockListUpdatedSince.RUnlock()
	return calls
}

func (mock *progressRepoMock) CountCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountCompletedFunc == nil {
		panic("progressRepoMock.CountCompletedFunc: method is nil but progressRepo.CountCompleted was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockCountCompleted.Lock()
	mock.calls.CountCompleted = append(mock.calls.CountCompleted, callInfo)
	mock.lockCountCompleted.Unlock()
	return mock.CountCompletedFunc(ctx, userID)
}

func (mock *progressRepoMock) CountCompletedCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockCountCompleted.RLock()
	calls := mock.calls.CountCompleted
	mock.lockCountCompleted.RUnlock()
	return calls
}

func (mock *progressRepoMock) Upsert(ctx context.Context, p domain.EpisodeProgress) (*domain.EpisodeProgress, error) {
	if mock.UpsertFunc == nil {
		panic("progressRepoMock.UpsertFunc: method is nil but progressRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.EpisodeProgress
	}{Ctx: ctx, P: p}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *progressRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	P   domain.EpisodeProgress
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *progressRepoMock) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	if mock.GetWalletFunc == nil {
		panic("progressRepoMock.GetWalletFunc: method is nil but progressRepo.GetWallet was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetWallet.Lock()
	mock.calls.GetWallet = append(mock.calls.GetWallet, callInfo)
	mock.lockGetWallet.Unlock()
	return mock.GetWalletFunc(ctx, userID)
}

func (mock *progressRepoMock) GetWalletCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetWallet.RLock()
	calls := mock.calls.GetWallet
	mock.lockGetWallet.RUnlock()
	return calls
}

func (mock *progressRepoMock) GetStreak(ctx context.Context, userID uuid.UUID) (*domain.Streak, error) {
	if mock.GetStreakFunc == nil {
		panic("progressRepoMock.GetStreakFunc: method is nil but progressRepo.GetStreak was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetStreak.Lock()
	mock.calls.GetStreak = append(mock.calls.GetStreak, callInfo)
	mock.lockGetStreak.Unlock()
	return mock.GetStreakFunc(ctx, userID)
}

func (mock *progressRepoMock) GetStreakCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetStreak.RLock()
	calls := mock.calls.GetStreak
	mock.lockGetStreak.RUnlock()
	return calls
}
