package http

import (
	"errors"
	"net/http"

	"smart-todo/internal/auth"
	"smart-todo/pkg/response"
)

var (
	errMalformedBody = errors.New("요청 형식이 올바르지 않습니다.")
	errUnauthorized  = errors.New("인증이 필요합니다.")
)

const msgAuthFail = "인증 서버에 연결하지 못했습니다. 잠시 후 다시 시도해주세요."

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrEmailRequired):
		return response.NewHTTPError(http.StatusBadRequest, "이메일을 입력해주세요.", err)
	case errors.Is(err, auth.ErrPasswordRequired):
		return response.NewHTTPError(http.StatusBadRequest, "비밀번호를 입력해주세요.", err)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return response.NewHTTPError(http.StatusUnauthorized, "이메일 또는 비밀번호가 올바르지 않습니다.", err)
	case errors.Is(err, auth.ErrNoSession):
		return response.NewHTTPError(http.StatusUnauthorized, errUnauthorized.Error(), err)
	}
	return response.NewHTTPError(http.StatusInternalServerError, msgAuthFail, err)
}
