package repository

// UpdateProfileOptions carries the fields to change; nil keeps the stored value.
type UpdateProfileOptions struct {
	DisplayName *string
	AvatarURL   *string
}
