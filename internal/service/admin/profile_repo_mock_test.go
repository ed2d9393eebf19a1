package admin

import (
	"context"
	"sync"

	"github.com/google/uuid"
	profilerepo "github.com/heartmarshall/learnhub/internal/adapter/postgrest/profile"
	"github.com/heartmarshall/learnhub/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	ListFunc      func(ctx context.Context, f profilerepo.ListFilter) ([]domain.Profile, int, error)
	SetActiveFunc func(ctx context.Context, id uuid.UUID, active bool) (*domain.Profile, error)
	SetRoleFunc   func(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.Profile, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   profilerepo.ListFilter
		}
		SetActive []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Active bool
		}
		SetRole []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Role domain.UserRole
		}
	}
	lockList      sync.RWMutex
	lockSetActive sync.RWMutex
	lockSetRole   sync.RWMutex
}

func (mock *profileRepoMock) List(ctx context.Context, f profilerepo.ListFilter) ([]domain.Profile, int, error) {
	if mock.ListFunc == nil {
		panic("profileRepoMock.ListFunc: method is nil but profileRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   profilerepo.ListFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *profileRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   profilerepo.ListFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *profileRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Profile, error) {
	if mock.SetActiveFunc == nil {
		panic("profileRepoMock.SetActiveFunc: method is nil but profileRepo.SetActive was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Active bool
	}{Ctx: ctx, Id: id, Active: active}
	mock.lockSetActive.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.lockSetActive.Unlock()
	return mock.SetActiveFunc(ctx, id, active)
}

func (mock *profileRepoMock) SetActiveCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Active bool
} {
	mock.lockSetActive.RLock()
	calls := mock.calls.SetActive
	mock.lockSetActive.RUnlock()
	return calls
}

func (mock *profileRepoMock) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.Profile, error) {
	if mock.SetRoleFunc == nil {
		panic("profileRepoMock.SetRoleFunc: method is nil but profileRepo.SetRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Role domain.UserRole
	}{Ctx: ctx, Id: id, Role: role}
	mock.lockSetRole.Lock()
	mock.calls.SetRole = append(mock.calls.SetRole, callInfo)
	mock.lockSetRole.Unlock()
	return mock.SetRoleFunc(ctx, id, role)
}

func (mock *profileRepoMock) SetRoleCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Role domain.UserRole
} {
	mock.lockSetRole.RLock()
	calls := mock.calls.SetRole
	mock.lockSetRole.RUnlock()
	return calls
}
