package http

import (
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/profile"
)

type updateReq struct {
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
}

func (r updateReq) toInput() profile.UpdateInput {
	return profile.UpdateInput{DisplayName: r.DisplayName, AvatarURL: r.AvatarURL}
}

type profileResp struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName *string   `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (h *handler) newProfileResp(p model.Profile) profileResp {
	return profileResp{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: optional(p.DisplayName),
		AvatarURL:   optional(p.AvatarURL),
		CreatedAt:   p.CreatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
