package middleware

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lingnite/user-service/internal/auth/domain"
	"github.com/lingnite/user-service/internal/auth/identity"
	"github.com/lingnite/user-service/internal/auth/service"
	"github.com/lingnite/user-service/pkg/constant"
)

// Authenticate validates the bearer token and populates the current-user
// slot. It runs after ClientIP so login telemetry always has an address to
// record.
//
// A missing or invalid token never aborts the request here; the user slot
// simply stays empty and route-level authorization decides whether anonymous
// access is acceptable.
func Authenticate(repo domain.UserRepository, tokens service.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Next()
		}

		if tokens.IsExpired(token) {
			return c.Next()
		}

		subject, err := tokens.ExtractSubject(token)
		if err != nil {
			log.Printf("warn: token rejected: %v, uri=%s", err, c.Path())
			return c.Next()
		}

		userID, err := strconv.ParseInt(subject, 10, 64)
		if err != nil {
			log.Printf("warn: token subject is not a user id: %q", subject)
			return c.Next()
		}

		user, err := repo.FindByID(c.Context(), userID)
		if err != nil || user == nil || user.IsInactive() {
			log.Printf("warn: token user missing or inactive: userId=%d", userID)
			return c.Next()
		}

		identity.SetCurrentUser(c, user)

		return c.Next()
	}
}

// RequireUser guards protected routes: anonymous requests are rejected with
// 401 before the handler runs.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !identity.IsLoggedIn(c) {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	header := c.Get(constant.AuthorizationHeader)
	if strings.HasPrefix(header, constant.BearerPrefix) {
		return header[len(constant.BearerPrefix):]
	}

	// Fallback for constrained clients that cannot set headers.
	if token := c.Query(constant.AccessTokenParam); token != "" {
		return token
	}
	if token := c.FormValue(constant.AccessTokenParam); token != "" {
		return token
	}

	return ""
}
