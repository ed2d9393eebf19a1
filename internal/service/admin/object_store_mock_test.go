package admin

import (
	"context"
	"io"
	"sync"
)

var _ objectStore = &objectStoreMock{}

type objectStoreMock struct {
	UploadFunc    func(ctx context.Context, bucket string, path string, contentType string, body io.Reader) error
	PublicURLFunc func(bucket string, path string) string

	calls struct {
		Upload []struct {
			Ctx         context.Context
			Bucket      string
			Path        string
			ContentType string
			Body        io.Reader
		}
		PublicURL []struct {
			Bucket string
			Path   string
		}
	}
	lockUpload    sync.RWMutex
	lockPublicURL sync.RWMutex
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

func (mock *objectStoreMock) PublicURL(bucket string, path string) string {
	if mock.PublicURLFunc == nil {
		panic("objectStoreMock.PublicURLFunc: method is nil but objectStore.PublicURL was just called")
	}
	callInfo := struct {
		Bucket string
		Path   string
	}{Bucket: bucket, Path: path}
	mock.lockPublicURL.Lock()
	mock.calls.PublicURL = append(mock.calls.PublicURL, callInfo)
	mock.lockPublicURL.Unlock()
	return mock.PublicURLFunc(bucket, path)
}

func (mock *objectStoreMock) PublicURLCalls() []struct {
	Bucket string
	Path   string
} {
	mock.lockPublicURL.RLock()
	calls := mock.calls.PublicURL
	mock.lockPublicURL.RUnlock()
	return calls
}
