package http

import (
	"errors"
	"net/http"

	"smart-todo/internal/profile"
	"smart-todo/internal/profile/repository"
	"smart-todo/pkg/response"
)

var (
	errMalformedBody = errors.New("요청 형식이 올바르지 않습니다.")
	errUnauthorized  = errors.New("인증이 필요합니다.")
)

const msgProfileFail = "프로필을 처리하지 못했습니다."

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, profile.ErrProfileNotFound):
		return response.NewHTTPError(http.StatusNotFound, "프로필을 찾을 수 없습니다.", err)
	case errors.Is(err, profile.ErrNothingToUpdate):
		return response.NewHTTPError(http.StatusBadRequest, "변경할 항목이 없습니다.", err)
	case errors.Is(err, profile.ErrDisplayNameTooLong):
		return response.NewHTTPError(http.StatusBadRequest, "이름은 50자 이하로 입력해주세요.", err)
	case errors.Is(err, profile.ErrInvalidAvatarURL):
		return response.NewHTTPError(http.StatusBadRequest, "프로필 이미지 주소가 올바르지 않습니다.", err)
	case errors.Is(err, repository.ErrUnauthorized):
		return response.NewHTTPError(http.StatusUnauthorized, errUnauthorized.Error(), err)
	}
	return response.NewHTTPError(http.StatusInternalServerError, msgProfileFail, err)
}
