package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get profile")
	ErrFailedToUpdate = errors.New("failed to update profile")
	ErrUnauthorized   = errors.New("backend rejected the session")
)
