package dto

// TokenInfo is the ephemeral result of token issuance. It is handed to the
// caller and never stored server-side.
type TokenInfo struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiration"` // epoch millis
	ExpiresIn int64  `json:"expiresIn"`  // seconds
	Type      string `json:"type"`
}

type LoginResponse struct {
	Nickname              string `json:"nickname"`
	AvatarURL             string `json:"avatarUrl"`
	AccessToken           string `json:"accessToken"`
	RefreshToken          string `json:"refreshToken"`
	AccessTokenExpiresIn  int64  `json:"accessTokenExpiresIn"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn"`
}
