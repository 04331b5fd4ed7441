package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned when a call is attempted without a credential.
	ErrMissingAPIKey = errors.New("gemini: API key is not configured")

	// ErrNoCandidates is returned when the API answers 200 without any candidate.
	ErrNoCandidates = errors.New("gemini: response has no candidates")
)

// APIError is a non-200 answer from the Gemini API.
type APIError struct {
	StatusCode int    // HTTP status code
	Code       int    // error.code from the body
	Status     string // error.status, e.g. RESOURCE_EXHAUSTED
	Message    string // error.message
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gemini: API error %d (%s): %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Message)
}
