package profile

import (
	"context"
	"io"
	"sync"
	"time"
)

var _ objectStore = &objectStoreMock{}

type objectStoreMock struct {
	UploadFunc  func(ctx context.Context, bucket string, path string, contentType string, body io.Reader) error
	RemoveFunc  func(ctx context.Context, bucket string, paths ...string) error
	SignURLFunc func(ctx context.Context, bucket string, path string, ttl time.Duration) (string, error)

	calls struct {
		Upload []struct {
			Ctx         context.Context
			Bucket      string
			Path        string
			ContentType string
			Body        io.Reader
		}
		Remove []struct {
			Ctx    context.Context
			Bucket string
			Paths  []string
		}
		SignURL []struct {
			Ctx    context.Context
			Bucket string
			Path   string
			Ttl    time.Duration
		}
	}
	lockUpload  sync.RWMutex
	lockRemove  sync.RWMutex
	lockSignURL sync.RWMutex
}

func (mock *objectStoreMock) Upload(ctx context.Context, bucket string, path string, contentType string, body io.Reader) error {
	if mock.UploadFunc == nil {
		panic("objectStoreMock.UploadFunc: method is nil but objectStore.Upload was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Bucket      string
		Path        string
		ContentType string
		Body        io.Reader
	}{Ctx: ctx, Bucket: bucket, Path: path, ContentType: contentType, Body: body}
	mock.lockUpload.Lock()
	mock.calls.Upload = append(mock.calls.Upload, callInfo)
	mock.lockUpload.Unlock()
	return mock.UploadFunc(ctx, bucket, path, contentType, body)
}

func (mock *objectStoreMock) UploadCalls() []struct {
	Ctx         context.Context
	Bucket      string
	Path        string
	ContentType string
	Body        io.Reader
} {
	mock.lockUpload.RLock()
	calls := mock.calls.Upload
	mock.lockUpload.RUnlock()
	return calls
}

func (mock *objectStoreMock) Remove(ctx context.Context, bucket string, paths ...string) error {
	if mock.RemoveFunc == nil {
		panic("objectStoreMock.RemoveFunc: method is nil but objectStore.Remove was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Bucket string
		Paths  []string
	}{Ctx: ctx, Bucket: bucket, Paths: paths}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, bucket, paths...)
}

func (mock *objectStoreMock) RemoveCalls() []struct {
	Ctx    context.Context
	Bucket string
	Paths  []string
} {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *objectStoreMock) SignURL(ctx context.Context, bucket string, path string, ttl time.Duration) (string, error) {
	if mock.SignURLFunc == nil {
		panic("objectStoreMock.SignURLFunc: method is nil but objectStore.SignURL was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Bucket string
		Path   string
		Ttl    time.Duration
	}{Ctx: ctx, Bucket: bucket, Path: path, Ttl: ttl}
	mock.lockSignURL.Lock()
	mock.calls.SignURL = append(mock.calls.SignURL, callInfo)
	mock.lockSignURL.Unlock()
	return mock.SignURLFunc(ctx, bucket, path, ttl)
}

func (mock *objectStoreMock) SignURLCalls() []struct {
	Ctx    context.Context
	Bucket string
	Path   string
	Ttl    time.Duration
} {
	mock.lockSignURL.RLock()
	calls := mock.calls.SignURL
	mock.lockSignURL.RUnlock()
	return calls
}
