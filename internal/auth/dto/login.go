package dto

// EmailLoginInput carries either a password or a verification code; which
// field is present selects the login strategy.
type EmailLoginInput struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	VerificationCode string `json:"verificationCode"`
}

type UsernameLoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
