package admin

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/service/media"
)

// CoverKind is the object folder a cover image is stored under.
type CoverKind string

const (
	CoverCategory CoverKind = "categories"
	CoverSubject  CoverKind = "subjects"
	CoverReward   CoverKind = "rewards"
)

func (k CoverKind) IsValid() bool {
	switch k {
	case CoverCategory, CoverSubject, CoverReward:
		return true
	}
	return false
}

// Cover is an uploaded cover image.
type Cover struct {
	Path      string
	PublicURL string
}

// UploadCover stores an image in the public cover bucket. The returned path
// goes into the cover_path or image_path field of the owning row.
func (s *Service) UploadCover(ctx context.Context, kind CoverKind, body io.Reader) (*Cover, error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be one of categories subjects rewards")
	}
	img, err := media.ReadImage(body, s.cfg.MaxCoverBytes, "cover")
	if err != nil {
		return nil, err
	}

	path := img.ObjectPath(string(kind))
	if err := s.store.Upload(ctx, s.cfg.CoverBucket, path, img.ContentType, img.Reader()); err != nil {
		return nil, fmt.Errorf("admin.UploadCover: %w", err)
	}

	s.log.InfoContext(ctx, "cover uploaded",
		slog.String("bucket", s.cfg.CoverBucket),
		slog.String("path", path),
		slog.Int("bytes", len(img.Data)),
	)
	return &Cover{Path: path, PublicURL: s.store.PublicURL(s.cfg.CoverBucket, path)}, nil
}
