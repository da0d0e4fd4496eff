package dto

type VerificationEmailInput struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
}

type VerificationEmailResponse struct {
	Email      string `json:"email"`
	ExpireTime int64  `json:"expireTime"` // epoch millis
}
