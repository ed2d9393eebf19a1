package rest

import (
	"context"
	"io"
	"sync"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/service/profile"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	AvatarURLFunc     func(ctx context.Context, p *domain.Profile) *string
	UploadAvatarFunc  func(ctx context.Context, body io.Reader) (*domain.Profile, error)
	UpdateProfileFunc func(ctx context.Context, input profile.UpdateProfileInput) (*domain.Profile, error)

	calls struct {
		AvatarURL []struct {
			Ctx context.Context
			P   *domain.Profile
		}
		UploadAvatar []struct {
			Ctx  context.Context
			Body io.Reader
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input profile.UpdateProfileInput
		}
	}
	lockAvatarURL     sync.RWMutex
	lockUploadAvatar  sync.RWMutex
	lockUpdateProfile sync.RWMutex
}

func (mock *profileServiceMock) AvatarURL(ctx context.Context, p *domain.Profile) *string {
	if mock.AvatarURLFunc == nil {
		panic("profileServiceMock.AvatarURLFunc: method is nil but profileService.AvatarURL was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Profile
	}{Ctx: ctx, P: p}
	mock.lockAvatarURL.Lock()
	mock.calls.AvatarURL = append(mock.calls.AvatarURL, callInfo)
	mock.lockAvatarURL.Unlock()
	return mock.AvatarURLFunc(ctx, p)
}

func (mock *profileServiceMock) AvatarURLCalls() []struct {
	Ctx context.Context
	P   *domain.Profile
} {
	mock.lockAvatarURL.RLock()
	calls := mock.calls.AvatarURL
	mock.lockAvatarURL.RUnlock()
	return calls
}

func (mock *profileServiceMock) UploadAvatar(ctx context.Context, body io.Reader) (*domain.Profile, error) {
	if mock.UploadAvatarFunc == nil {
		panic("profileServiceMock.UploadAvatarFunc: method is nil but profileService.UploadAvatar was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Body io.Reader
	}{Ctx: ctx, Body: body}
	mock.lockUploadAvatar.Lock()
	mock.calls.UploadAvatar = append(mock.calls.UploadAvatar, callInfo)
	mock.lockUploadAvatar.Unlock()
	return mock.UploadAvatarFunc(ctx, body)
}

func (mock *profileServiceMock) UploadAvatarCalls() []struct {
	Ctx  context.Context
	Body io.Reader
} {
	mock.lockUploadAvatar.RLock()
	calls := mock.calls.UploadAvatar
	mock.lockUploadAvatar.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdateProfile(ctx context.Context, input profile.UpdateProfileInput) (*domain.Profile, error) {
	if mock.UpdateProfileFunc == nil {
		panic("profileServiceMock.UpdateProfileFunc: method is nil but profileService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input profile.UpdateProfileInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input profile.UpdateProfileInput
} {
	mock.lockUpdateProfile.RLock()
	calls := mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
