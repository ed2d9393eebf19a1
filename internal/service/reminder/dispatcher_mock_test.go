package reminder

import (
	"context"
	"sync"

	"github.com/heartmarshall/learnhub/internal/domain"
)

var _ Dispatcher = &DispatcherMock{}

type DispatcherMock struct {
	DispatchFunc func(ctx context.Context, rem domain.BookingReminder) error

	calls struct {
		Dispatch []struct {
			Ctx context.Context
			Rem domain.BookingReminder
		}
	}
	lockDispatch sync.RWMutex
}

func (mock *DispatcherMock) Dispatch(ctx context.Context, rem domain.BookingReminder) error {
	if mock.DispatchFunc == nil {
		panic("DispatcherMock.DispatchFunc: method is nil but Dispatcher.Dispatch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rem domain.BookingReminder
	}{Ctx: ctx, Rem: rem}
	mock.lockDispatch.Lock()
	mock.calls.Dispatch = append(mock.calls.Dispatch, callInfo)
	mock.lockDispatch.Unlock()
	return mock.DispatchFunc(ctx, rem)
}

func (mock *DispatcherMock) DispatchCalls() []struct {
	Ctx context.Context
	Rem domain.BookingReminder
} {
	mock.lockDispatch.RLock()
	calls := mock.calls.Dispatch
	mock.lockDispatch.RUnlock()
	return calls
}
