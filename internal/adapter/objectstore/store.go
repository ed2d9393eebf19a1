// Package objectstore uploads, removes and signs objects in the hosted
// storage service. Failures are returned as *domain.StorageError.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/learnhub/internal/adapter/httpapi"
	"github.com/heartmarshall/learnhub/internal/domain"
)

type api interface {
	Do(ctx context.Context, req httpapi.Request) (*httpapi.Response, error)
	JSON(ctx context.Context, req httpapi.Request, out any) (*httpapi.Response, error)
	BaseURL() string
}

// Store is the object storage client.
type Store struct {
	api api
}

// New creates a Store.
func New(client api) *Store {
	return &Store{api: client}
}

// Upload writes body to bucket/path, replacing any existing object.
func (s *Store) Upload(ctx context.Context, bucket, path, contentType string, body io.Reader) error {
	_, err := s.api.Do(ctx, httpapi.Request{
		Method:      http.MethodPost,
		Path:        objectPath("object", bucket, path),
		RawBody:     body,
		ContentType: contentType,
		Header: http.Header{
			"X-Upsert":      {"true"},
			"Cache-Control": {"max-age=3600"},
		},
	})
	return storageError(domain.StorageUpload, bucket, path, err)
}

// Remove deletes the objects at paths. Missing objects are not an error.
func (s *Store) Remove(ctx context.Context, bucket string, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	_, err := s.api.JSON(ctx, httpapi.Request{
		Method: http.MethodDelete,
		Path:   "/storage/v1/object/" + bucket,
		Body:   map[string][]string{"prefixes": paths},
	}, nil)
	return storageError(domain.StorageRemove, bucket, strings.Join(paths, ","), err)
}

// SignURL returns a URL granting read access to bucket/path for ttl.
func (s *Store) SignURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error) {
	var resp struct {
		SignedURL string `json:"signedURL"`
	}
	_, err := s.api.JSON(ctx, httpapi.Request{
		Method: http.MethodPost,
		Path:   objectPath("object/sign", bucket, path),
		Body:   map[string]int{"expiresIn": int(ttl.Seconds())},
	}, &resp)
	if err != nil {
		return "", storageError(domain.StorageSign, bucket, path, err)
	}
	if resp.SignedURL == "" {
		return "", &domain.StorageError{Kind: domain.StorageSign, Bucket: bucket, Path: path, Message: "empty signed url"}
	}
	return s.api.BaseURL() + "/storage/v1" + resp.SignedURL, nil
}

// PublicURL returns the URL of an object in a public bucket. It does not
// check that the object exists.
func (s *Store) PublicURL(bucket, path string) string {
	return s.api.BaseURL() + objectPath("object/public", bucket, path)
}

func objectPath(kind, bucket, path string) string {
	return "/storage/v1/" + kind + "/" + bucket + "/" + strings.TrimLeft(path, "/")
}

func storageError(kind domain.StorageErrorKind, bucket, path string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *httpapi.APIError
	if !errors.As(err, &apiErr) {
		return &domain.StorageError{Kind: kind, Bucket: bucket, Path: path, Message: err.Error()}
	}

	msg := strings.ToLower(apiErr.Message)
	switch {
	case strings.Contains(msg, "bucket not found"):
		kind = domain.StorageBucketMissing
	case strings.Contains(msg, "object not found") || apiErr.Code == "not_found":
		kind = domain.StorageObjectMissing
	}
	return &domain.StorageError{
		Kind:    kind,
		Bucket:  bucket,
		Path:    path,
		Message: fmt.Sprintf("%s (%s)", apiErr.Message, strconv.Itoa(apiErr.Status)),
	}
}
