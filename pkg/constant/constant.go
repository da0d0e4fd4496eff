package constant

const (
	// RefreshTokenCookie is the cookie name carrying the refresh token.
	RefreshTokenCookie = "REFRESH_TOKEN"

	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "

	// AccessTokenParam is the query/form fallback for clients that
	// cannot set the Authorization header.
	AccessTokenParam = "access_token"

	TokenTypeAccess  = "access_token"
	TokenTypeRefresh = "refresh_token"

	ClaimTokenType = "type"
	ClaimUserID    = "userId"
	ClaimUsername  = "username"
)

// Verification code purposes. Codes are scoped per (email, purpose).
const (
	PurposeLogin         = "login"
	PurposeResetPassword = "reset_password"
	PurposeChangeEmail   = "change_email"
)

const (
	VerificationCodeLength = 6
	DefaultClientIP        = "127.0.0.1"
)
