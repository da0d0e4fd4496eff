package dto

// RefreshInput is optional in the body; the handler falls back to the
// refresh cookie when it is empty.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}
