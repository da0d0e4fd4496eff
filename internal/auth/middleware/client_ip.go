package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lingnite/user-service/internal/auth/identity"
	"github.com/lingnite/user-service/pkg/constant"
)

// ipHeaders is the fixed, ordered list of proxy headers consulted for the
// client address. Order matters: the first header with a usable candidate
// wins.
var ipHeaders = []string{
	"X-Forwarded-For",
	"Proxy-Client-IP",
	"WL-Proxy-Client-IP",
	"HTTP_CLIENT_IP",
	"HTTP_X_FORWARDED_FOR",
	"X-Real-IP",
}

// ClientIP resolves the client address and stores it in the identity context
// before any auth decision runs. It never fails the request; when nothing
// usable is found it falls back to the transport peer address, and on any
// extraction failure to the loopback literal.
func ClientIP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity.SetClientIP(c, resolveClientIP(c))
		return c.Next()
	}
}

func resolveClientIP(c *fiber.Ctx) string {
	for _, header := range ipHeaders {
		// X-Forwarded-For may carry a chain; every entry is a candidate.
		for _, candidate := range strings.Split(c.Get(header), ",") {
			candidate = strings.TrimSpace(candidate)
			if isUsableCandidate(candidate) {
				return candidate
			}
		}
	}

	remote := c.IP()
	if remote == "" {
		return constant.DefaultClientIP
	}

	// Normalize IPv6 loopback forms to the IPv4 literal.
	if remote == "::1" || remote == "0:0:0:0:0:0:0:1" {
		return constant.DefaultClientIP
	}

	return remote
}

// isUsableCandidate rejects empty values, the literal "unknown" and
// private-range addresses. A private address is not an error, it simply is
// not a candidate for the first-found rule.
func isUsableCandidate(ip string) bool {
	if ip == "" || strings.EqualFold(ip, "unknown") {
		return false
	}
	if strings.HasPrefix(ip, "10.") || strings.HasPrefix(ip, "172.") || strings.HasPrefix(ip, "192.168.") {
		return false
	}
	return true
}
