package supabase

import (
	"context"
	"time"

	"smart-todo/internal/model"
	repo "smart-todo/internal/profile/repository"
	sb "smart-todo/pkg/supabase"
)

type profileRow struct {
	ID          string     `json:"id"`
	Email       *string    `json:"email"`
	DisplayName *string    `json:"display_name"`
	AvatarURL   *string    `json:"avatar_url"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func (row profileRow) toProfile() model.Profile {
	p := model.Profile{
		ID:          row.ID,
		Email:       deref(row.Email),
		DisplayName: deref(row.DisplayName),
		AvatarURL:   deref(row.AvatarURL),
	}
	if row.CreatedAt != nil {
		p.CreatedAt = *row.CreatedAt
	}
	if row.UpdatedAt != nil {
		p.UpdatedAt = *row.UpdatedAt
	}
	return p
}

func (r *implRepository) GetProfile(ctx context.Context, sc model.Scope) (model.Profile, error) {
	client, err := r.newClient(sc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return model.Profile{}, repo.ErrFailedToGet
	}

	var out profileRow
	err = client.From(tableProfiles).Select(profileColumns).Eq("id", sc.UserID).Single().Execute(ctx, &out)
	if sb.IsNotFound(err) {
		return model.Profile{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return model.Profile{}, r.wrap(err, repo.ErrFailedToGet)
	}
	return out.toProfile(), nil
}

func (r *implRepository) UpdateProfile(ctx context.Context, sc model.Scope, opt repo.UpdateProfileOptions) (model.Profile, error) {
	client, err := r.newClient(sc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProfile"), err)
		return model.Profile{}, repo.ErrFailedToUpdate
	}

	// Only the keys present in the patch are written; empty strings become null.
	patch := map[string]any{"updated_at": time.Now().UTC()}
	if opt.DisplayName != nil {
		patch["display_name"] = nullable(*opt.DisplayName)
	}
	if opt.AvatarURL != nil {
		patch["avatar_url"] = nullable(*opt.AvatarURL)
	}

	var rows []profileRow
	err = client.From(tableProfiles).Select(profileColumns).Eq("id", sc.UserID).Update(patch).Execute(ctx, &rows)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProfile"), err)
		return model.Profile{}, r.wrap(err, repo.ErrFailedToUpdate)
	}
	if len(rows) == 0 {
		return model.Profile{}, nil
	}
	return rows[0].toProfile(), nil
}

func (r *implRepository) wrap(err, fallback error) error {
	if sb.IsUnauthorized(err) {
		return repo.ErrUnauthorized
	}
	return fallback
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
