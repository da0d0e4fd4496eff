// Package identity holds the per-request identity slots: the authenticated
// user and the client IP. Both live in fiber's request-scoped storage, which
// is reset when the handler returns on every exit path, so nothing leaks
// into the next request served by the same worker.
package identity

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lingnite/user-service/internal/auth/domain"
)

const (
	currentUserKey = "identity.currentUser"
	clientIPKey    = "identity.clientIP"
)

func SetCurrentUser(c *fiber.Ctx, user *domain.User) {
	c.Locals(currentUserKey, user)
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(currentUserKey).(*domain.User)
	return user
}

func CurrentUserID(c *fiber.Ctx) (int64, bool) {
	user := CurrentUser(c)
	if user == nil {
		return 0, false
	}
	return user.ID, true
}

func IsLoggedIn(c *fiber.Ctx) bool {
	return CurrentUser(c) != nil
}

func SetClientIP(c *fiber.Ctx, ip string) {
	c.Locals(clientIPKey, ip)
}

func ClientIP(c *fiber.Ctx) string {
	ip, _ := c.Locals(clientIPKey).(string)
	return ip
}

func ClientIPOrDefault(c *fiber.Ctx, defaultIP string) string {
	if ip := ClientIP(c); ip != "" {
		return ip
	}
	return defaultIP
}
