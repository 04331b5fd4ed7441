package llmprovider

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"smart-todo/pkg/gemini"
)

// ErrorKind is the coarse class of an upstream model failure.
type ErrorKind string

const (
	KindQuota            ErrorKind = "quota"
	KindAuth             ErrorKind = "auth"
	KindModelUnavailable ErrorKind = "model_unavailable"
	KindNetwork          ErrorKind = "network"
	KindUnknown          ErrorKind = "unknown"
)

// Classify maps an error returned by a provider (possibly wrapped) to an ErrorKind.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	if errors.Is(err, gemini.ErrMissingAPIKey) {
		return KindAuth
	}

	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		if kind := classifyAPIError(apiErr); kind != KindUnknown {
			return kind
		}
		return classifyMessage(apiErr.Message)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindNetwork
	}

	return classifyMessage(err.Error())
}

// IsModelUnavailable reports whether err should advance the fallback chain.
func IsModelUnavailable(err error) bool {
	return Classify(err) == KindModelUnavailable
}

func classifyAPIError(e *gemini.APIError) ErrorKind {
	switch {
	case e.StatusCode == http.StatusTooManyRequests || e.Status == "RESOURCE_EXHAUSTED":
		return KindQuota
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden,
		e.Status == "UNAUTHENTICATED" || e.Status == "PERMISSION_DENIED":
		return KindAuth
	case e.StatusCode == http.StatusNotFound || e.Status == "NOT_FOUND":
		return KindModelUnavailable
	}
	return KindUnknown
}

func classifyMessage(msg string) ErrorKind {
	m := strings.ToLower(msg)
	switch {
	case strings.Contains(m, "quota"), strings.Contains(m, "rate limit"), strings.Contains(m, "429"):
		return KindQuota
	case strings.Contains(m, "api key"), strings.Contains(m, "api_key"), strings.Contains(m, "permission"):
		return KindAuth
	case strings.Contains(m, "not found"), strings.Contains(m, "not supported"), strings.Contains(m, "unsupported"):
		return KindModelUnavailable
	case strings.Contains(m, "fetch"), strings.Contains(m, "network"), strings.Contains(m, "connection"):
		return KindNetwork
	}
	return KindUnknown
}
