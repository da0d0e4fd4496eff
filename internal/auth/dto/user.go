package dto

import (
	"time"

	"github.com/lingnite/user-service/internal/auth/domain"
)

type UserOutput struct {
	ID            int64      `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Nickname      string     `json:"nickname"`
	AvatarURL     string     `json:"avatarUrl"`
	EmailVerified bool       `json:"emailVerified"`
	LastLoginTime *time.Time `json:"lastLoginTime,omitempty"`
	LoginCount    int        `json:"loginCount"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func NewUserOutput(u *domain.User) *UserOutput {
	return &UserOutput{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Nickname:      u.Nickname,
		AvatarURL:     u.AvatarURL,
		EmailVerified: u.EmailVerified,
		LastLoginTime: u.LastLoginTime,
		LoginCount:    u.LoginCount,
		CreatedAt:     u.CreatedAt,
	}
}
