package repository

import (
	"context"

	"smart-todo/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// GetProfile returns a zero Profile when the caller has no row.
	GetProfile(ctx context.Context, sc model.Scope) (model.Profile, error)

	// UpdateProfile returns a zero Profile when no row was updated.
	UpdateProfile(ctx context.Context, sc model.Scope, opt UpdateProfileOptions) (model.Profile, error)
}
