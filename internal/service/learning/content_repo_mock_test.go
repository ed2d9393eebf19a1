package learning

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/learnhub/internal/domain"
)

var _ contentRepo = &contentRepoMock{}

type contentRepoMock struct {
	ListCategoriesFunc         func(ctx context.Context, includeUnpublished bool) ([]domain.Category, error)
	ListSubjectsFunc           func(ctx context.Context, categoryID uuid.UUID, includeUnpublished bool) ([]domain.Subject, error)
	GetSubjectFunc             func(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
	ListEpisodesFunc           func(ctx context.Context, subjectID uuid.UUID, includeUnpublished bool) ([]domain.Episode, error)
	ListEpisodesBySubjectsFunc func(ctx context.Context, subjectIDs []uuid.UUID, includeUnpublished bool) ([]domain.Episode, error)
	GetEpisodeFunc             func(ctx context.Context, id uuid.UUID) (*domain.Episode, error)

	calls struct {
		ListCategories []struct {
			Ctx                context.Context
			IncludeUnpublished bool
		}
		ListSubjects []struct {
			Ctx                context.Context
			CategoryID         uuid.UUID
			IncludeUnpublished bool
		}
		GetSubject []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListEpisodes []struct {
			Ctx                context.Context
			SubjectID          uuid.UUID
			IncludeUnpublished bool
		}
		ListEpisodesBySubjects []struct {
			Ctx                context.Context
			SubjectIDs         []uuid.UUID
			IncludeUnpublished bool
		}
		GetEpisode []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockListCategories         sync.RWMutex
	lockListSubjects           sync.RWMutex
	lockGetSubject             sync.RWMutex
	lockListEpisodes           sync.RWMutex
	lockListEpisodesBySubjects sync.RWMutex
	lockGetEpisode             sync.RWMutex
}

func (mock *contentRepoMock) ListCategories(ctx context.Context, includeUnpublished bool) ([]domain.Category, error) {
	if mock.ListCategoriesFunc == nil {
		panic("contentRepoMock.ListCategoriesFunc: method is nil but contentRepo.ListCategories was just called")
	}
	callInfo := struct {
		Ctx                context.Context
		IncludeUnpublished bool
	}{Ctx: ctx, IncludeUnpublished: includeUnpublished}
	mock.lockListCategories.Lock()
	mock.calls.ListCategories = append(mock.calls.ListCategories, callInfo)
	mock.lockListCategories.Unlock()
	return mock.ListCategoriesFunc(ctx, includeUnpublished)
}

func (mock *contentRepoMock) ListCategoriesCalls() []struct {
	Ctx                context.Context
	IncludeUnpublished bool
} {
	mock.lockListCategories.RLock()
	calls := mock.calls.ListCategories
	mock.lockListCategories.RUnlock()
	return calls
}

func (mock *contentRepoMock) ListSubjects(ctx context.Context, categoryID uuid.UUID, includeUnpublished bool) ([]domain.Subject, error) {
	if mock.ListSubjectsFunc == nil {
		panic("contentRepoMock.ListSubjectsFunc: method is nil but contentRepo.ListSubjects was just called")
	}
	callInfo := struct {
		Ctx                context.Context
		CategoryID         uuid.UUID
		IncludeUnpublished bool
	}{Ctx: ctx, CategoryID: categoryID, IncludeUnpublished: includeUnpublished}
	mock.lockListSubjects.Lock()
	mock.calls.ListSubjects = append(mock.calls.ListSubjects, callInfo)
	mock.lockListSubjects.Unlock()
	return mock.ListSubjectsFunc(ctx, categoryID, includeUnpublished)
}

func (mock *contentRepoMock) ListSubjectsCalls() []struct {
	Ctx                context.Context
	CategoryID         uuid.UUID
	IncludeUnpublished bool
} {
	mock.lockListSubjects.RLock()
	calls := mock.calls.ListSubjects
	mock.lockListSubjects.RUnlock()
	return calls
}

func (mock *contentRepoMock) GetSubject(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	if mock.GetSubjectFunc == nil {
		panic("contentRepoMock.GetSubjectFunc: method is nil but contentRepo.GetSubject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetSubject.Lock()
	mock.calls.GetSubject = append(mock.calls.GetSubject, callInfo)
	mock.lockGetSubject.Unlock()
	return mock.GetSubjectFunc(ctx, id)
}

func (mock *contentRepoMock) GetSubjectCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetSubject.RLock()
	calls := mock.calls.GetSubject
	mock.lockGetSubject.RUnlock()
	return calls
}

func (mock *contentRepoMock) ListEpisodes(ctx context.Context, subjectID uuid.UUID, includeUnpublished bool) ([]domain.Episode, error) {
	if mock.ListEpisodesFunc == nil {
		panic("contentRepoMock.ListEpisodesFunc: method is nil but contentRepo.ListEpisodes was just called")
	}
	callInfo := struct {
		Ctx                context.Context
		SubjectID          uuid.UUID
		IncludeUnpublished bool
	}{Ctx: ctx, SubjectID: subjectID, IncludeUnpublished: includeUnpublished}
	mock.lockListEpisodes.Lock()
	mock.calls.ListEpisodes = append(mock.calls.ListEpisodes, callInfo)
	mock.lockListEpisodes.Unlock()
	return mock.ListEpisodesFunc(ctx, subjectID, includeUnpublished)
}

func (mock *contentRepoMock) ListEpisodesCalls() []struct {
	Ctx                context.Context
	SubjectID          uuid.UUID
	IncludeUnpublished bool
} {
	mock.lockListEpisodes.RLock()
	calls := mock.calls.ListEpisodes
	mock.lockListEpisodes.RUnlock()
	return calls
}

func (mock *contentRepoMock) ListEpisodesBySubjects(ctx context.Context, subjectIDs []uuid.UUID, includeUnpublished bool) ([]domain.Episode, error) {
	if mock.ListEpisodesBySubjectsFunc == nil {
		panic("contentRepoMock.ListEpisodesBySubjectsFunc: method is nil but contentRepo.ListEpisodesBySubjects was just called")
	}
	callInfo := struct {
		Ctx                context.Context
		SubjectIDs         []uuid.UUID
		IncludeUnpublished bool
	}{Ctx: ctx, SubjectIDs: subjectIDs, IncludeUnpublished: includeUnpublished}
	mock.lockListEpisodesBySubjects.Lock()
	mock.calls.ListEpisodesBySubjects = append(mock.calls.ListEpisodesBySubjects, callInfo)
	mock.lockListEpisodesBySubjects.Unlock()
	return mock.ListEpisodesBySubjectsFunc(ctx, subjectIDs, includeUnpublished)
}

func (mock *contentRepoMock) ListEpisodesBySubjectsCalls() []struct {
	Ctx                context.Context
	SubjectIDs         []uuid.UUID
	IncludeUnpublished bool
} {
	mock.lockListEpisodesBySubjects.RLock()
	calls := mock.calls.ListEpisodesBySubjects
	mock.lockListEpisodesBySubjects.RUnlock()
	return calls
}

func (mock *contentRepoMock) GetEpisode(ctx context.Context, id uuid.UUID) (*domain.Episode, error) {
	if mock.GetEpisodeFunc == nil {
		panic("contentRepoMock.GetEpisodeFunc: method is nil but contentRepo.GetEpisode was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetEpisode.Lock()
	mock.calls.GetEpisode = append(mock.calls.GetEpisode, callInfo)
	mock.lockGetEpisode.Unlock()
	return mock.GetEpisodeFunc(ctx, id)
}

func (mock *contentRepoMock) GetEpisodeCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetEpisode.RLock()
	calls := mock.calls.GetEpisode
	mock.lockGetEpisode.RUnlock()
	return calls
}
