package assistant

import "errors"

var (
	ErrEmptyText     = errors.New("text is empty")
	ErrTextTooShort  = errors.New("text is too short")
	ErrTextTooLong   = errors.New("text is too long")
	ErrTextTooNoisy  = errors.New("text has too many unsupported characters")
	ErrNoTodos       = errors.New("no todos to analyze")
	ErrInvalidPeriod = errors.New("invalid period")
)
