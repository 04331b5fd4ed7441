package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingURL       = errors.New("supabase: project URL is not configured")
	ErrNotAuthenticated = errors.New("supabase: no session")
	ErrNoRefreshToken   = errors.New("supabase: no refresh token")
)

// Error is a non-2xx answer from PostgREST or GoTrue.
type Error struct {
	StatusCode int
	Code       string
	Message    string
	Details    string
	Hint       string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase: %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err means the row does not exist or is not visible.
func IsNotFound(err error) bool {
	var sbErr *Error
	if !errors.As(err, &sbErr) {
		return false
	}
	return sbErr.StatusCode == http.StatusNotFound || sbErr.Code == "PGRST116"
}

// IsUnauthorized reports whether err is an expired or rejected token.
func IsUnauthorized(err error) bool {
	var sbErr *Error
	if !errors.As(err, &sbErr) {
		return errors.Is(err, ErrNotAuthenticated)
	}
	return sbErr.StatusCode == http.StatusUnauthorized || sbErr.Code == "PGRST301" || sbErr.Code == "PGRST303"
}

func parseError(statusCode int, raw []byte) *Error {
	e := &Error{StatusCode: statusCode, Message: string(raw)}

	var body struct {
		// PostgREST
		Code    json.RawMessage `json:"code"`
		Message string          `json:"message"`
		Details *string         `json:"details"`
		Hint    *string         `json:"hint"`
		// GoTrue
		Msg              string `json:"msg"`
		ErrorCode        string `json:"error_code"`
		ErrorName        string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return e
	}

	var code string
	if len(body.Code) > 0 && json.Unmarshal(body.Code, &code) != nil {
		code = ""
	}

	switch {
	case body.Message != "":
		e.Message = body.Message
	case body.Msg != "":
		e.Message = body.Msg
	case body.ErrorDescription != "":
		e.Message = body.ErrorDescription
	}

	switch {
	case code != "":
		e.Code = code
	case body.ErrorCode != "":
		e.Code = body.ErrorCode
	case body.ErrorName != "":
		e.Code = body.ErrorName
	}

	if body.Details != nil {
		e.Details = *body.Details
	}
	if body.Hint != nil {
		e.Hint = *body.Hint
	}
	return e
}
