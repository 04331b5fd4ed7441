package usecase

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"smart-todo/internal/model"
	"smart-todo/internal/profile"
	"smart-todo/internal/profile/repository"
)

const maxDisplayNameRunes = 50

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (model.Profile, error) {
	p, err := uc.repo.GetProfile(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "profile.usecase.Get GetProfile: %v", err)
		return model.Profile{}, err
	}
	if p.ID == "" {
		return model.Profile{}, profile.ErrProfileNotFound
	}
	if p.Email == "" {
		p.Email = sc.Email
	}
	return p, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input profile.UpdateInput) (model.Profile, error) {
	if input.DisplayName == nil && input.AvatarURL == nil {
		return model.Profile{}, profile.ErrNothingToUpdate
	}

	opt := repository.UpdateProfileOptions{}
	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if utf8.RuneCountInString(name) > maxDisplayNameRunes {
			return model.Profile{}, profile.ErrDisplayNameTooLong
		}
		opt.DisplayName = &name
	}
	if input.AvatarURL != nil {
		avatar := strings.TrimSpace(*input.AvatarURL)
		if avatar != "" && !isWebURL(avatar) {
			return model.Profile{}, profile.ErrInvalidAvatarURL
		}
		opt.AvatarURL = &avatar
	}

	p, err := uc.repo.UpdateProfile(ctx, sc, opt)
	if err != nil {
		uc.l.Errorf(ctx, "profile.usecase.Update UpdateProfile: %v", err)
		return model.Profile{}, err
	}
	if p.ID == "" {
		return model.Profile{}, profile.ErrProfileNotFound
	}
	if p.Email == "" {
		p.Email = sc.Email
	}
	return p, nil
}

func isWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
