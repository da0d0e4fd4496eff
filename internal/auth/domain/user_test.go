package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_IsInactive(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		inactive bool
	}{
		{name: "normal", user: User{Status: StatusNormal}, inactive: false},
		{name: "disabled", user: User{Status: StatusDisabled}, inactive: true},
		{name: "frozen", user: User{Status: StatusFrozen}, inactive: true},
		{name: "deleted", user: User{Status: StatusNormal, Deleted: true}, inactive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inactive, tt.user.IsInactive())
		})
	}
}

func TestUser_UpdateLoginInfo(t *testing.T) {
	user := User{LoginCount: 2}
	before := time.Now()

	user.UpdateLoginInfo("203.0.113.5")

	assert.Equal(t, "203.0.113.5", user.LastLoginIP)
	assert.Equal(t, 3, user.LoginCount)
	require.NotNil(t, user.LastLoginTime)
	assert.False(t, user.LastLoginTime.Before(before))
}
