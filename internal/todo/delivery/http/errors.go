package http

import (
	"errors"
	"net/http"

	"smart-todo/internal/assistant"
	"smart-todo/internal/todo"
	"smart-todo/internal/todo/repository"
	"smart-todo/pkg/llmprovider"
	"smart-todo/pkg/response"
)

var (
	errMalformedBody = errors.New("요청 형식이 올바르지 않습니다.")
	errMissingID     = errors.New("할 일 ID가 필요합니다.")
	errUnauthorized  = errors.New("인증이 필요합니다.")
)

const (
	msgLoadFail    = "할 일을 불러오지 못했습니다."
	msgSaveFail    = "할 일을 저장하지 못했습니다."
	msgDeleteFail  = "할 일을 삭제하지 못했습니다."
	msgAnalyzeFail = "할 일 분석 중 오류가 발생했습니다."
	msgQuota       = "AI 요청 한도를 초과했습니다. 잠시 후 다시 시도해주세요."
	msgAIFail      = "AI 서비스 호출에 실패했습니다. 잠시 후 다시 시도해주세요."
)

func badRequest(public error, cause error) *response.HTTPError {
	return response.NewHTTPError(http.StatusBadRequest, public.Error(), cause)
}

// mapError translates todo use case errors into HTTP errors.
// fallback is the message used for unclassified failures.
func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, todo.ErrTaskNotFound):
		return response.NewHTTPError(http.StatusNotFound, "할 일을 찾을 수 없습니다.", err)
	case errors.Is(err, todo.ErrTitleRequired):
		return response.NewHTTPError(http.StatusBadRequest, "제목을 입력해주세요.", err)
	case errors.Is(err, todo.ErrTitleTooLong):
		return response.NewHTTPError(http.StatusBadRequest, "제목은 100자 이하로 입력해주세요.", err)
	case errors.Is(err, todo.ErrInvalidPriority):
		return response.NewHTTPError(http.StatusBadRequest, "우선순위는 high, medium, low 중 하나여야 합니다.", err)
	case errors.Is(err, todo.ErrInvalidDueDate):
		return response.NewHTTPError(http.StatusBadRequest, "마감일은 YYYY-MM-DD 형식이어야 합니다.", err)
	case errors.Is(err, todo.ErrInvalidDueTime):
		return response.NewHTTPError(http.StatusBadRequest, "마감 시간은 HH:mm 형식이어야 합니다.", err)
	case errors.Is(err, todo.ErrNotPendingDelete):
		return response.NewHTTPError(http.StatusConflict, "되돌릴 수 있는 시간이 지났습니다.", err)
	case errors.Is(err, todo.ErrNoTodosInPeriod):
		return response.NewHTTPError(http.StatusBadRequest, "해당 기간에 분석할 할 일이 없습니다.", err)
	case errors.Is(err, assistant.ErrInvalidPeriod):
		return response.NewHTTPError(http.StatusBadRequest, "기간은 today 또는 week 중 하나여야 합니다.", err)
	case errors.Is(err, repository.ErrUnauthorized):
		return response.NewHTTPError(http.StatusUnauthorized, errUnauthorized.Error(), err)
	case errors.Is(err, llmprovider.ErrSchemaMismatch), errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return response.NewHTTPError(http.StatusInternalServerError, msgAIFail, err)
	}

	// Only model failures are classified; backend messages are not.
	var pErr *llmprovider.ProviderError
	if errors.As(err, &pErr) {
		if llmprovider.Classify(err) == llmprovider.KindQuota {
			return response.NewHTTPError(http.StatusTooManyRequests, msgQuota, err)
		}
		return response.NewHTTPError(http.StatusInternalServerError, msgAIFail, err)
	}
	return response.NewHTTPError(http.StatusInternalServerError, fallback, err)
}
