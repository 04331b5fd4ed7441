package profile

import (
	"context"

	"smart-todo/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Get returns the caller's profile.
	Get(ctx context.Context, sc model.Scope) (model.Profile, error)

	// Update changes the editable profile fields of the caller.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Profile, error)
}
