package rest

import (
	"sync"

	"github.com/heartmarshall/learnhub/internal/querycache"
)

var _ cachePurger = &cachePurgerMock{}

type cachePurgerMock struct {
	PurgeFunc func(prefix querycache.Key) int

	calls struct {
		Purge []struct {
			Prefix querycache.Key
		}
	}
	lockPurge sync.RWMutex
}

func (mock *cachePurgerMock) Purge(prefix querycache.Key) int {
	if mock.PurgeFunc == nil {
		panic("cachePurgerMock.PurgeFunc: method is nil but cachePurger.Purge was just called")
	}
	callInfo := struct{ Prefix querycache.Key }{Prefix: prefix}
	mock.lockPurge.Lock()
	mock.calls.Purge = append(mock.calls.Purge, callInfo)
	mock.lockPurge.Unlock()
	return mock.PurgeFunc(prefix)
}

func (mock *cachePurgerMock) PurgeCalls() []struct {
	Prefix querycache.Key
} {
	mock.lockPurge.RLock()
	calls := mock.calls.Purge
	mock.lockPurge.RUnlock()
	return calls
}
