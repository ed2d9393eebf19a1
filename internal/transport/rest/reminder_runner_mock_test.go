package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/learnhub/internal/service/reminder"
)

var _ reminderRunner = &reminderRunnerMock{}

type reminderRunnerMock struct {
	RunFunc func(ctx context.Context) (reminder.Result, error)

	calls struct {
		Run []struct {
			Ctx context.Context
		}
	}
	lockRun sync.RWMutex
}

func (mock *reminderRunnerMock) Run(ctx context.Context) (reminder.Result, error) {
	if mock.RunFunc == nil {
		panic("reminderRunnerMock.RunFunc: method is nil but reminderRunner.Run was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockRun.Lock()
	mock.calls.Run = append(mock.calls.Run, callInfo)
	mock.lockRun.Unlock()
	return mock.RunFunc(ctx)
}

func (mock *reminderRunnerMock) RunCalls() []struct {
	Ctx context.Context
} {
	mock.lockRun.RLock()
	calls := mock.calls.Run
	mock.lockRun.RUnlock()
	return calls
}
