package http

import (
	"errors"
	"net/http"

	"smart-todo/internal/assistant"
	"smart-todo/pkg/llmprovider"
	"smart-todo/pkg/response"
)

var (
	errMalformedBody = errors.New("요청 형식이 올바르지 않습니다.")
	errTodosRequired = errors.New("분석할 할 일 목록(todos)이 필요합니다.")
)

const (
	msgQuota        = "AI 요청 한도를 초과했습니다. 잠시 후 다시 시도해주세요."
	msgAuth         = "AI 서비스 인증에 실패했습니다. API 키 설정을 확인해주세요."
	msgUnavailable  = "사용 가능한 AI 모델을 찾지 못했습니다. 모델 설정을 확인해주세요."
	msgNetwork      = "AI 서비스에 연결할 수 없습니다. 네트워크 상태를 확인하고 다시 시도해주세요."
	msgBadOutput    = "AI 응답을 해석하지 못했습니다. 다시 시도해주세요."
	msgNotSetUp     = "AI 모델이 설정되지 않았습니다. 서버 설정을 확인해주세요."
	msgGenerateFail = "할 일 생성 중 오류가 발생했습니다."
	msgAnalyzeFail  = "할 일 분석 중 오류가 발생했습니다."
)

func badRequest(public error, cause error) *response.HTTPError {
	return response.NewHTTPError(http.StatusBadRequest, public.Error(), cause)
}

// mapError translates use case and upstream model errors into HTTP errors.
// fallback is the message used for unclassified failures.
func (h *handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyText):
		return response.NewHTTPError(http.StatusBadRequest, "할 일 내용을 입력해주세요.", err)
	case errors.Is(err, assistant.ErrTextTooShort):
		return response.NewHTTPError(http.StatusBadRequest, "입력이 너무 짧습니다. 2자 이상 입력해주세요.", err)
	case errors.Is(err, assistant.ErrTextTooLong):
		return response.NewHTTPError(http.StatusBadRequest, "입력이 너무 깁니다. 500자 이하로 입력해주세요.", err)
	case errors.Is(err, assistant.ErrTextTooNoisy):
		return response.NewHTTPError(http.StatusBadRequest, "이해할 수 있는 문장을 입력해주세요.", err)
	case errors.Is(err, assistant.ErrNoTodos):
		return response.NewHTTPError(http.StatusBadRequest, "분석할 할 일이 없습니다.", err)
	case errors.Is(err, assistant.ErrInvalidPeriod):
		return response.NewHTTPError(http.StatusBadRequest, "기간은 today 또는 week 중 하나여야 합니다.", err)
	case errors.Is(err, llmprovider.ErrSchemaMismatch):
		return response.NewHTTPError(http.StatusInternalServerError, msgBadOutput, err)
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return response.NewHTTPError(http.StatusInternalServerError, msgNotSetUp, err)
	}

	switch llmprovider.Classify(err) {
	case llmprovider.KindQuota:
		return response.NewHTTPError(http.StatusTooManyRequests, msgQuota, err)
	case llmprovider.KindAuth:
		return response.NewHTTPError(http.StatusInternalServerError, msgAuth, err)
	case llmprovider.KindModelUnavailable:
		return response.NewHTTPError(http.StatusInternalServerError, msgUnavailable, err)
	case llmprovider.KindNetwork:
		return response.NewHTTPError(http.StatusInternalServerError, msgNetwork, err)
	default:
		return response.NewHTTPError(http.StatusInternalServerError, fallback, err)
	}
}
