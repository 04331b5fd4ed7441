package http

import (
	"time"

	"smart-todo/internal/auth"
	"smart-todo/internal/model"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) toInput() auth.SignInInput {
	return auth.SignInInput{Email: r.Email, Password: r.Password}
}

type sessionResp struct {
	UserID    string     `json:"user_id"`
	Email     string     `json:"email"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (h *handler) newSessionResp(o auth.SessionOutput) sessionResp {
	resp := sessionResp{UserID: o.UserID, Email: o.Email}
	if !o.ExpiresAt.IsZero() {
		resp.ExpiresAt = &o.ExpiresAt
	}
	return resp
}

func (h *handler) newMeResp(sc model.Scope) sessionResp {
	return sessionResp{UserID: sc.UserID, Email: sc.Email}
}
