package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/learnhub/internal/authsync"
)

var _ sessionRegistry = &sessionRegistryMock{}

type sessionRegistryMock struct {
	CreateFunc func(ctx context.Context) (*authsync.Entry, error)
	RemoveFunc func(id string)

	calls struct {
		Create []struct {
			Ctx context.Context
		}
		Remove []struct {
			Id string
		}
	}
	lockCreate sync.RWMutex
	lockRemove sync.RWMutex
}

func (mock *sessionRegistryMock) Create(ctx context.Context) (*authsync.Entry, error) {
	if mock.CreateFunc == nil {
		panic("sessionRegistryMock.CreateFunc: method is nil but sessionRegistry.Create was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx)
}

func (mock *sessionRegistryMock) CreateCalls() []struct {
	Ctx context.Context
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRegistryMock) Remove(id string) {
	if mock.RemoveFunc == nil {
		panic("sessionRegistryMock.RemoveFunc: method is nil but sessionRegistry.Remove was just called")
	}
	callInfo := struct{ Id string }{Id: id}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	mock.RemoveFunc(id)
}

func (mock *sessionRegistryMock) RemoveCalls() []struct {
	Id string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
