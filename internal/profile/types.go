package profile

// UpdateInput is a partial update: nil fields keep their stored value and an
// empty string clears the field.
type UpdateInput struct {
	DisplayName *string
	AvatarURL   *string
}
