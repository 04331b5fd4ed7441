package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is an error that already knows its status code and public message.
type HTTPError struct {
	Status  int
	Message string
	Cause   error
}

func (e *HTTPError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Cause
}

// NewHTTPError builds an HTTPError with an optional underlying cause.
func NewHTTPError(status int, message string, cause error) *HTTPError {
	return &HTTPError{Status: status, Message: message, Cause: cause}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Data: data})
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Resp{Data: data})
}

// Accepted sends 202 JSON with data.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, Resp{Data: data})
}

// Error writes err as an error envelope. *HTTPError values keep their status and
// message, anything else becomes a 500 with the default message.
// When withDetails is set the cause chain is exposed in "details".
func Error(c *gin.Context, err error, withDetails bool) {
	status := http.StatusInternalServerError
	body := ErrorResp{Error: DefaultErrorMessage}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Status
		body.Error = httpErr.Message
		if withDetails && httpErr.Cause != nil {
			body.Details = httpErr.Cause.Error()
		}
	} else if withDetails && err != nil {
		body.Details = err.Error()
	}

	c.AbortWithStatusJSON(status, body)
}

// BadRequest sends 400 with message.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResp{Error: message})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResp{Error: DefaultErrorMessage})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResp{Error: "인증이 필요합니다."})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{Error: message})
}
