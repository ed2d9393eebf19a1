package admin

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/learnhub/internal/domain"
)

var _ contentRepo = &contentRepoMock{}

type contentRepoMock struct {
	CreateCategoryFunc func(ctx context.Context, c domain.Category) (*domain.Category, error)
	UpdateCategoryFunc func(ctx context.Context, c domain.Category) (*domain.Category, error)
	DeleteCategoryFunc func(ctx context.Context, id uuid.UUID) error
	CreateSubjectFunc  func(ctx context.Context, s domain.Subject) (*domain.Subject, error)
	UpdateSubjectFunc  func(ctx context.Context, s domain.Subject) (*domain.Subject, error)
	DeleteSubjectFunc  func(ctx context.Context, id uuid.UUID) error
	CreateEpisodeFunc  func(ctx context.Context, e domain.Episode) (*domain.Episode, error)
	UpdateEpisodeFunc  func(ctx context.Context, e domain.Episode) (*domain.Episode, error)
	DeleteEpisodeFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		CreateCategory []struct {
			Ctx context.Context
			C   domain.Category
		}
		UpdateCategory []struct {
			Ctx context.Context
			C   domain.Category
		}
		DeleteCategory []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		CreateSubject []struct {
			Ctx context.Context
			S   domain.Subject
		}
		UpdateSubject []struct {
			Ctx context.Context
			S   domain.Subject
		}
		DeleteSubject []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		CreateEpisode []struct {
			Ctx context.Context
			E   domain.Episode
		}
		UpdateEpisode []struct {
			Ctx context.Context
			E   domain.Episode
		}
		DeleteEpisode []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreateCategory sync.RWMutex
	lockUpdateCategory sync.RWMutex
	lockDeleteCategory sync.RWMutex
	lockCreateSubject  sync.RWMutex
	lockUpdateSubject  sync.RWMutex
	lockDeleteSubject  sync.RWMutex
	lockCreateEpisode  sync.RWMutex
	lockUpdateEpisode  sync.RWMutex
	lockDeleteEpisode  sync.RWMutex
}

func (mock *contentRepoMock) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if mock.CreateCategoryFunc == nil {
		panic("contentRepoMock.CreateCategoryFunc: method is nil but contentRepo.CreateCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Category
	}{Ctx: ctx, C: c}
	mock.lockCreateCategory.Lock()
	mock.calls.CreateCategory = append(mock.calls.CreateCategory, callInfo)
	mock.lockCreateCategory.Unlock()
	return mock.CreateCategoryFunc(ctx, c)
}

func (mock *contentRepoMock) CreateCategoryCalls() []struct {
	Ctx context.Context
	C   domain.Category
} {
	mock.lockCreateCategory.RLock()
	calls := mock.calls.CreateCategory
	mock.lockCreateCategory.RUnlock()
	return calls
}

func (mock *contentRepoMock) UpdateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if mock.UpdateCategoryFunc == nil {
		panic("contentRepoMock.UpdateCategoryFunc: method is nil but contentRepo.UpdateCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Category
	}{Ctx: ctx, C: c}
	mock.lockUpdateCategory.Lock()
	mock.calls.UpdateCategory = append(mock.calls.UpdateCategory, callInfo)
	mock.lockUpdateCategory.Unlock()
	return mock.UpdateCategoryFunc(ctx, c)
}

func (mock *contentRepoMock) UpdateCategoryCalls() []struct {
	Ctx context.Context
	C   domain.Category
} {
	mock.lockUpdateCategory.RLock()
	calls := mock.calls.UpdateCategory
	mock.lockUpdateCategory.RUnlock()
	return calls
}

func (mock *contentRepoMock) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteCategoryFunc == nil {
		panic("contentRepoMock.DeleteCategoryFunc: method is nil but contentRepo.DeleteCategory was just called")
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

func (mock *contentRepoMock) DeleteCategoryCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteCategory.RLock()
	calls := mock.calls.DeleteCategory
	mock.lockDeleteCategory.RUnlock()
	return calls
}

func (mock *contentRepoMock) CreateSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error) {
	if mock.CreateSubjectFunc == nil {
		panic("contentRepoMock.CreateSubjectFunc: method is nil but contentRepo.CreateSubject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Subject
	}{Ctx: ctx, S: s}
	mock.lockCreateSubject.Lock()
	mock.calls.CreateSubject = append(mock.calls.CreateSubject, callInfo)
	mock.lockCreateSubject.Unlock()
	return mock.CreateSubjectFunc(ctx, s)
}

func (mock *contentRepoMock) CreateSubjectCalls() []struct {
	Ctx context.Context
	S   domain.Subject
} {
	mock.lockCreateSubject.RLock()
	calls := mock.calls.CreateSubject
	mock.lockCreateSubject.RUnlock()
	return calls
}

func (mock *contentRepoMock) UpdateSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error) {
	if mock.UpdateSubjectFunc == nil {
		panic("contentRepoMock.UpdateSubjectFunc: method is nil but contentRepo.UpdateSubject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Subject
	}{Ctx: ctx, S: s}
	mock.lockUpdateSubject.Lock()
	mock.calls.UpdateSubject = append(mock.calls.UpdateSubject, callInfo)
	mock.lockUpdateSubject.Unlock()
	return mock.UpdateSubjectFunc(ctx, s)
}

func (mock *contentRepoMock) UpdateSubjectCalls() []struct {
	Ctx context.Context
	S   domain.Subject
} {
	mock.lockUpdateSubject.RLock()
	calls := mock.calls.UpdateSubject
	mock.lockUpdateSubject.RUnlock()
	return calls
}

func (mock *contentRepoMock) DeleteSubject(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteSubjectFunc == nil {
		panic("contentRepoMock.DeleteSubjectFunc: method is nil but contentRepo.DeleteSubject was just called")
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

func (mock *contentRepoMock) DeleteSubjectCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteSubject.RLock()
	calls := mock.calls.DeleteSubject
	mock.lockDeleteSubject.RUnlock()
	return calls
}

func (mock *contentRepoMock) CreateEpisode(ctx context.Context, e domain.Episode) (*domain.Episode, error) {
	if mock.CreateEpisodeFunc == nil {
		panic("contentRepoMock.CreateEpisodeFunc: method is nil but contentRepo.CreateEpisode was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.Episode
	}{Ctx: ctx, E: e}
	mock.lockCreateEpisode.Lock()
	mock.calls.CreateEpisode = append(mock.calls.CreateEpisode, callInfo)
	mock.lockCreateEpisode.Unlock()
	return mock.CreateEpisodeFunc(ctx, e)
}

func (mock *contentRepoMock) CreateEpisodeCalls() []struct {
	Ctx context.Context
	E   domain.Episode
} {
	mock.lockCreateEpisode.RLock()
	calls := mock.calls.CreateEpisode
	mock.lockCreateEpisode.RUnlock()
	return calls
}

func (mock *contentRepoMock) UpdateEpisode(ctx context.Context, e domain.Episode) (*domain.Episode, error) {
	if mock.UpdateEpisodeFunc == nil {
		panic("contentRepoMock.UpdateEpisodeFunc: method is nil but contentRepo.UpdateEpisode was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.Episode
	}{Ctx: ctx, E: e}
	mock.lockUpdateEpisode.Lock()
	mock.calls.UpdateEpisode = append(mock.calls.UpdateEpisode, callInfo)
	mock.lockUpdateEpisode.Unlock()
	return mock.UpdateEpisodeFunc(ctx, e)
}

func (mock *contentRepoMock) UpdateEpisodeCalls() []struct {
	Ctx context.Context
	E   domain.Episode
} {
	mock.lockUpdateEpisode.RLock()
	calls := mock.calls.UpdateEpisode
	mock.lockUpdateEpisode.RUnlock()
	return calls
}

func (mock *contentRepoMock) DeleteEpisode(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteEpisodeFunc == nil {
		panic("contentRepoMock.DeleteEpisodeFunc: method is nil but contentRepo.DeleteEpisode was just called")
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

func (mock *contentRepoMock) DeleteEpisodeCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteEpisode.RLock()
	calls := mock.calls.DeleteEpisode
	mock.lockDeleteEpisode.RUnlock()
	return calls
}
