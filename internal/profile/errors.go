package profile

import "errors"

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrNothingToUpdate    = errors.New("nothing to update")
	ErrDisplayNameTooLong = errors.New("display name is too long")
	ErrInvalidAvatarURL   = errors.New("invalid avatar url")
)
