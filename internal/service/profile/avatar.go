package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/querycache"
	"github.com/heartmarshall/learnhub/internal/service/media"
	"github.com/heartmarshall/learnhub/pkg/ctxutil"
)

// AvatarURL returns a signed URL for the profile's avatar, or nil when the
// profile has none or the URL cannot be produced. Callers fall back to initials.
//
// A signed URL is reused until half its lifetime has passed and dropped after
// three quarters, so a served URL is always valid for a while longer.
func (s *Service) AvatarURL(ctx context.Context, p *domain.Profile) *string {
	if p == nil || p.AvatarPath == nil || *p.AvatarPath == "" {
		return nil
	}
	path := *p.AvatarPath

	res, err := querycache.Get(ctx, s.cache, querycache.Request[string]{
		Key:         avatarKey(s.cfg.AvatarBucket, path),
		FreshWindow: s.cfg.URLTTL / 2,
		EvictWindow: s.cfg.URLTTL * 3 / 4,
		Fetch: func(ctx context.Context) (string, error) {
			return s.store.SignURL(ctx, s.cfg.AvatarBucket, path, s.cfg.URLTTL)
		},
	})
	if err != nil {
		if !errors.Is(err, domain.ErrBucketMissing) {
			s.log.WarnContext(ctx, "sign avatar url",
				slog.String("user_id", p.ID.String()),
				slog.String("error", err.Error()),
			)
		}
		return nil
	}
	url := res.Value
	return &url
}

// UploadAvatar validates and stores a new avatar for the caller, points the
// profile at it and removes the previous object.
func (s *Service) UploadAvatar(ctx context.Context, body io.Reader) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	img, err := media.ReadImage(body, s.cfg.MaxAvatarBytes, "avatar")
	if err != nil {
		return nil, err
	}

	current, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.UploadAvatar: load: %w", err)
	}

	path := img.ObjectPath(userID.String())
	if err := s.store.Upload(ctx, s.cfg.AvatarBucket, path, img.ContentType, img.Reader()); err != nil {
		return nil, fmt.Errorf("profile.UploadAvatar: %w", err)
	}

	updated, err := s.profiles.Update(ctx, userID, domain.ProfileUpdate{AvatarPath: &path})
	if err != nil {
		s.removeBestEffort(ctx, path)
		return nil, fmt.Errorf("profile.UploadAvatar: update: %w", err)
	}

	if old := current.AvatarPath; old != nil && *old != "" && *old != path {
		s.removeBestEffort(ctx, *old)
		s.cache.Invalidate(avatarKey(s.cfg.AvatarBucket, *old))
	}

	s.log.InfoContext(ctx, "avatar uploaded",
		slog.String("user_id", userID.String()),
		slog.Int("bytes", len(img.Data)),
	)
	return updated, nil
}

func (s *Service) removeBestEffort(ctx context.Context, path string) {
	if err := s.store.Remove(ctx, s.cfg.AvatarBucket, path); err != nil {
		s.log.WarnContext(ctx, "remove avatar object",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}
}
