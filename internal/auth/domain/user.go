package domain

import "time"

// UserStatus mirrors the account-status column: 0 disabled, 1 normal, 2 frozen.
type UserStatus int

const (
	StatusDisabled UserStatus = 0
	StatusNormal   UserStatus = 1
	StatusFrozen   UserStatus = 2
)

type User struct {
	ID            int64
	Username      string
	Email         string
	Phone         string
	PasswordHash  string
	Nickname      string
	AvatarURL     string
	Status        UserStatus
	EmailVerified bool
	Deleted       bool
	LastLoginTime *time.Time
	LastLoginIP   string
	LoginCount    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsInactive reports whether the user must be rejected for authentication.
// Any non-normal status and soft deletion are collapsed into one answer so
// callers cannot tell the reason apart.
func (u *User) IsInactive() bool {
	return u.Status != StatusNormal || u.Deleted
}

// UpdateLoginInfo records login telemetry for the current attempt.
func (u *User) UpdateLoginInfo(ip string) {
	now := time.Now()
	u.LastLoginTime = &now
	u.LastLoginIP = ip
	u.LoginCount++
}
