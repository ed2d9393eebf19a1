package rest

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/service/admin"
)

var _ adminService = &adminServiceMock{}

type adminServiceMock struct {
	ListUsersFunc      func(ctx context.Context, input admin.ListUsersInput) ([]domain.Profile, int, error)
	SetUserActiveFunc  func(ctx context.Context, targetID uuid.UUID, active bool) (*domain.Profile, error)
	SetUserRoleFunc    func(ctx context.Context, targetID uuid.UUID, role domain.UserRole) (*domain.Profile, error)
	CreateCategoryFunc func(ctx context.Context, input admin.CategoryInput) (*domain.Category, error)
	UpdateCategoryFunc func(ctx context.Context, id uuid.UUID, input admin.CategoryInput) (*domain.Category, error)
	DeleteCategoryFunc func(ctx context.Context, id uuid.UUID) error
	CreateSubjectFunc  func(ctx context.Context, input admin.SubjectInput) (*domain.Subject, error)
	UpdateSubjectFunc  func(ctx context.Context, id uuid.UUID, input admin.SubjectInput) (*domain.Subject, error)
	DeleteSubjectFunc  func(ctx context.Context, id uuid.UUID) error
	CreateEpisodeFunc  func(ctx context.Context, input admin.EpisodeInput) (*domain.Episode, error)
	UpdateEpisodeFunc  func(ctx context.Context, id uuid.UUID, input admin.EpisodeInput) (*domain.Episode, error)
	DeleteEpisodeFunc  func(ctx context.Context, id uuid.UUID) error
	CreateRewardFunc   func(ctx context.Context, input admin.RewardInput) (*domain.Reward, error)
	UpdateRewardFunc   func(ctx context.Context, id uuid.UUID, input admin.RewardInput) (*domain.Reward, error)
	UploadCoverFunc    func(ctx context.Context, kind admin.CoverKind, body io.Reader) (*admin.Cover, error)

	calls struct {
		ListUsers []struct {
			Ctx   context.Context
			Input admin.ListUsersInput
		}
		SetUserActive []struct {
			Ctx      context.Context
			TargetID uuid.UUID
			Active   bool
		}
		SetUserRole []struct {
			Ctx      context.Context
			TargetID uuid.UUID
			Role     domain.UserRole
		}
		CreateCategory []struct {
			Ctx   context.Context
			Input admin.CategoryInput
		}
		UpdateCategory []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input admin.CategoryInput
		}
		DeleteCategory []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		CreateSubject []struct {
			Ctx   context.Context
			Input admin.SubjectInput
		}
		UpdateSubject []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input admin.SubjectInput
		}
		DeleteSubject []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		CreateEpisode []struct {
			Ctx   context.Context
			Input admin.EpisodeInput
		}
		UpdateEpisode []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input admin.EpisodeInput
		}
		DeleteEpisode []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		CreateReward []struct {
			Ctx   context.Context
			Input admin.RewardInput
		}
		UpdateReward []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Input admin.RewardInput
		}
		UploadCover []struct {
			Ctx  context.Context
			Kind admin.CoverKind
			Body io.Reader
		}
	}
	lockListUsers      sync.RWMutex
	lockSetUserActive  sync.RWMutex
	lockSetUserRole    sync.RWMutex
	lockCreateCategory sync.RWMutex
	lockUpdateCategory sync.RWMutex
	lockDeleteCategory sync.RWMutex
	lockCreateSubject  sync.RWMutex
	lockUpdateSubject  sync.RWMutex
	lockDeleteSubject  sync.RWMutex
	lockCreateEpisode  sync.RWMutex
	lockUpdateEpisode  sync.RWMutex
	lockDeleteEpisode  sync.RWMutex
	lockCreateReward   sync.RWMutex
	lockUpdateReward   sync.RWMutex
	lockUploadCover    sync.RWMutex
}

func (mock *adminServiceMock) ListUsers(ctx context.Context, input admin.ListUsersInput) ([]domain.Profile, int, error) {
	if mock.ListUsersFunc == nil {
		panic("adminServiceMock.ListUsersFunc: method is nil but adminService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input admin.ListUsersInput
	}{Ctx: ctx, Input: input}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx, input)
}

func (mock *adminServiceMock) ListUsersCalls() []struct {
	Ctx   context.Context
	Input admin.ListUsersInput
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *adminServiceMock) SetUserActive(ctx context.Context, targetID uuid.UUID, active bool) (*domain.Profile, error) {
	if mock.SetUserActiveFunc == nil {
		panic("adminServiceMock.SetUserActiveFunc: method is nil but adminService.SetUserActive was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TargetID uuid.UUID
		Active   bool
	}{Ctx: ctx, TargetID: targetID, Active: active}
	mock.lockSetUserActive.Lock()
	mock.calls.SetUserActive = append(mock.calls.SetUserActive, callInfo)
	mock.lockSetUserActive.Unlock()
	return mock.SetUserActiveFunc(ctx, targetID, active)
}

func (mock *adminServiceMock) SetUserActiveCalls() []struct {
	Ctx      context.Context
	TargetID uuid.UUID
	Active   bool
} {
	mock.lockSetUserActive.RLock()
	calls := mock.calls.SetUserActive
	mock.lockSetUserActive.RUnlock()
	return calls
}

func (mock *adminServiceMock) SetUserRole(ctx context.Context, targetID uuid.UUID, role domain.UserRole) (*domain.Profile, error) {
	if mock.SetUserRoleFunc == nil {
		panic("adminServiceMock.SetUserRoleFunc: method is nil but adminService.SetUserRole was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TargetID uuid.UUID
		Role     domain.UserRole
	}{Ctx: ctx, TargetID: targetID, Role: role}
	mock.lockSetUserRole.Lock()
	mock.calls.SetUserRole = append(mock.calls.SetUserRole, callInfo)
	mock.lockSetUserRole.Unlock()
	return mock.SetUserRoleFunc(ctx, targetID, role)
}

func (mock *adminServiceMock) SetUserRoleCalls() []struct {
	Ctx      context.Context
	TargetID uuid.UUID
	Role     domain.UserRole
} {
	mock.lockSetUserRole.RLock()
	calls := mock.calls.SetUserRole
	mock.lockSetUserRole.RUnlock()
	return calls
}

func (mock *adminServiceMock) CreateCategory(ctx context.Context, input admin.CategoryInput) (*domain.Category, error) {
	if mock.CreateCategoryFunc == nil {
		panic("adminServiceMock.CreateCategoryFunc: method is nil but adminService.CreateCategory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input admin.CategoryInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateCategory.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, callInfo)
	mock.lockCreateCategory.Unlock()
	return mock.CreateCategoryFunc(ctx, input)
}

func (mock *adminServiceMock) CreateCategoryCalls() []struct {
	Ctx   context.Context
	Input admin.CategoryInput
} {
	mock.lockCreateCategory.RLock()
	calls := mock.calls.CreateCategory
	mock.lockCreateCategory.RUnlock()
	return calls
}

func (mock *adminServiceMock) UpdateCategory(ctx context.Context, id uuid.UUID, input admin.CategoryInput) (*domain.Category, error) {
	if mock.UpdateCategoryFunc == nil {
		panic("adminServiceMock.UpdateCategoryFunc: method is nil but adminService.UpdateCategory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input admin.CategoryInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockUpdateCategory.Lock()
	mock.calls.UpdateCategory = append(mock.calls.UpdateCategory, callInfo)
	mock.lockUpdateCategory.Unlock()
	return mock.UpdateCategoryFunc(ctx, id, input)
}

func (mock *adminServiceMock) UpdateCategoryCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input admin.CategoryInput
} {
	mock.lockUpdateCategory.RLock()
	calls := mock.calls.UpdateCategory
	mock.lockUpdateCategory.RUnlock()
	return calls
}

func (mock *adminServiceMock) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteCategoryFunc == nil {
		panic("adminServiceMock.DeleteCategoryFunc: method is nil but adminService.DeleteCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteCategory.Lock()
	mock.calls.DeleteCategory = append(mock.calls.DeleteCategory, callInfo)
	mock.lockDeleteCategory.Unlock()
	return mock.DeleteCategoryFunc(ctx, id)
}

func (mock *adminServiceMock) DeleteCategoryCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteCategory.RLock()
	calls := mock.calls.DeleteCategory
	mock.lockDeleteCategory.RUnlock()
	return calls
}

func (mock *adminServiceMock) CreateSubject(ctx context.Context, input admin.SubjectInput) (*domain.Subject, error) {
	if mock.CreateSubjectFunc == nil {
		panic("adminServiceMock.CreateSubjectFunc: method is nil but adminService.CreateSubject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input admin.SubjectInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateSubject.Lock()
	mock.calls.CreateSubject = append(mock.calls.CreateSubject, callInfo)
	mock.lockCreateSubject.Unlock()
	return mock.CreateSubjectFunc(ctx, input)
}

func (mock *adminServiceMock) CreateSubjectCalls() []struct {
	Ctx   context.Context
	Input admin.SubjectInput
} {
	mock.lockCreateSubject.RLock()
	calls := mock.calls.CreateSubject
	mock.lockCreateSubject.RUnlock()
	return calls
}

func (mock *adminServiceMock) UpdateSubject(ctx context.Context, id uuid.UUID, input admin.SubjectInput) (*domain.Subject, error) {
	if mock.UpdateSubjectFunc == nil {
		panic("adminServiceMock.UpdateSubjectFunc: method is nil but adminService.UpdateSubject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input admin.SubjectInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockUpdateSubject.Lock()
	mock.calls.UpdateSubject = append(mock.calls.UpdateSubject, callInfo)
	mock.lockUpdateSubject.Unlock()
	return mock.UpdateSubjectFunc(ctx, id, input)
}

func (mock *adminServiceMock) UpdateSubjectCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input admin.SubjectInput
} {
	mock.lockUpdateSubject.RLock()
	calls := mock.calls.UpdateSubject
	mock.lockUpdateSubject.RUnlock()
	return calls
}

func (mock *adminServiceMock) DeleteSubject(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteSubjectFunc == nil {
		panic("adminServiceMock.DeleteSubjectFunc: method is nil but adminService.DeleteSubject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteSubject.Lock()
	mock.calls.DeleteSubject = append(mock.calls.DeleteSubject, callInfo)
	mock.lockDeleteSubject.Unlock()
	return mock.DeleteSubjectFunc(ctx, id)
}

func (mock *adminServiceMock) DeleteSubjectCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteSubject.RLock()
	calls := mock.calls.DeleteSubject
	mock.lockDeleteSubject.RUnlock()
	return calls
}

func (mock *adminServiceMock) CreateEpisode(ctx context.Context, input admin.EpisodeInput) (*domain.Episode, error) {
	if mock.CreateEpisodeFunc == nil {
		panic("adminServiceMock.CreateEpisodeFunc: method is nil but adminService.CreateEpisode was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input admin.EpisodeInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateEpisode.Lock()
	mock.calls.CreateEpisode = append(mock.calls.CreateEpisode, callInfo)
	mock.lockCreateEpisode.Unlock()
	return mock.CreateEpisodeFunc(ctx, input)
}

func (mock *adminServiceMock) CreateEpisodeCalls() []struct {
	Ctx   context.Context
	Input admin.EpisodeInput
} {
	mock.lockCreateEpisode.RLock()
	calls := mock.calls.CreateEpisode
	mock.lockCreateEpisode.RUnlock()
	return calls
}

func (mock *adminServiceMock) UpdateEpisode(ctx context.Context, id uuid.UUID, input admin.EpisodeInput) (*domain.Episode, error) {
	if mock.UpdateEpisodeFunc == nil {
		panic("adminServiceMock.UpdateEpisodeFunc: method is nil but adminService.UpdateEpisode was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input admin.EpisodeInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockUpdateEpisode.Lock()
	mock.calls.UpdateEpisode = append(mock.calls.UpdateEpisode, callInfo)
	mock.lockUpdateEpisode.Unlock()
	return mock.UpdateEpisodeFunc(ctx, id, input)
}

func (mock *adminServiceMock) UpdateEpisodeCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input admin.EpisodeInput
} {
	mock.lockUpdateEpisode.RLock()
	calls := mock.calls.UpdateEpisode
	mock.lockUpdateEpisode.RUnlock()
	return calls
}

func (mock *adminServiceMock) DeleteEpisode(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteEpisodeFunc == nil {
		panic("adminServiceMock.DeleteEpisodeFunc: method is nil but adminService.DeleteEpisode was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteEpisode.Lock()
	mock.calls.DeleteEpisode = append(mock.calls.DeleteEpisode, callInfo)
	mock.lockDeleteEpisode.Unlock()
	return mock.DeleteEpisodeFunc(ctx, id)
}

func (mock *adminServiceMock) DeleteEpisodeCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteEpisode.RLock()
	calls := mock.calls.DeleteEpisode
	mock.lockDeleteEpisode.RUnlock()
	return calls
}

func (mock *adminServiceMock) CreateReward(ctx context.Context, input admin.RewardInput) (*domain.Reward, error) {
	if mock.CreateRewardFunc == nil {
		panic("adminServiceMock.CreateRewardFunc: method is nil but adminService.CreateReward was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input admin.RewardInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateReward.Lock()
	mock.calls.CreateReward = append(mock.calls.CreateReward, callInfo)
	mock.lockCreateReward.Unlock()
	return mock.CreateRewardFunc(ctx, input)
}

func (mock *adminServiceMock) CreateRewardCalls() []struct {
	Ctx   context.Context
	Input admin.RewardInput
} {
	mock.lockCreateReward.RLock()
	calls := mock.calls.CreateReward
	mock.lockCreateReward.RUnlock()
	return calls
}

func (mock *adminServiceMock) UpdateReward(ctx context.Context, id uuid.UUID, input admin.RewardInput) (*domain.Reward, error) {
	if mock.UpdateRewardFunc == nil {
		panic("adminServiceMock.UpdateRewardFunc: method is nil but adminService.UpdateReward was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Input admin.RewardInput
	}{Ctx: ctx, Id: id, Input: input}
	mock.lockUpdateReward.Lock()
	mock.calls.UpdateReward = append(mock.calls.UpdateReward, callInfo)
	mock.lockUpdateReward.Unlock()
	return mock.UpdateRewardFunc(ctx, id, input)
}

func (mock *adminServiceMock) UpdateRewardCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Input admin.RewardInput
} {
	mock.lockUpdateReward.RLock()
	calls := mock.calls.UpdateReward
	mock.lockUpdateReward.RUnlock()
	return calls
}

func (mock *adminServiceMock) UploadCover(ctx context.Context, kind admin.CoverKind, body io.Reader) (*admin.Cover, error) {
	if mock.UploadCoverFunc == nil {
		panic("adminServiceMock.UploadCoverFunc: method is nil but adminService.UploadCover was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind admin.CoverKind
		Body io.Reader
	}{Ctx: ctx, Kind: kind, Body: body}
	mock.lockUploadCover.Lock()
	mock.calls.UploadCover = append(mock.calls.UploadCover, callInfo)
	mock.lockUploadCover.Unlock()
	return mock.UploadCoverFunc(ctx, kind, body)
}

func (mock *adminServiceMock) UploadCoverCalls() []struct {
	Ctx  context.Context
	Kind admin.CoverKind
	Body io.Reader
} {
	mock.lockUploadCover.RLock()
	calls := mock.calls.UploadCover
	mock.lockUploadCover.RUnlock()
	return calls
}
