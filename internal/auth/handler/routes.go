package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lingnite/user-service/internal/auth/domain"
	"github.com/lingnite/user-service/internal/auth/middleware"
	"github.com/lingnite/user-service/internal/auth/service"
)

// RegisterRoutes mounts the authentication pipeline and the session
// endpoints. Pipeline order is fixed: IP extraction must populate the
// identity context before token validation runs.
func RegisterRoutes(app *fiber.App, h *AuthHandler, repo domain.UserRepository, tokens service.TokenIssuer) {
	app.Use(middleware.ClientIP())
	app.Use(middleware.Authenticate(repo, tokens))

	auth := app.Group("/api/v1/auth")
	auth.Post("/email-login", h.EmailLogin)
	auth.Post("/username-login", h.UsernameLogin)
	auth.Post("/username-registration", h.UsernameRegistration)
	auth.Post("/verification/emails", h.SendVerificationEmail)
	auth.Post("/refresh", h.Refresh)
	auth.Post("/logout", h.Logout)

	users := app.Group("/api/v1/users", middleware.RequireUser())
	users.Get("/me", h.Me)
}
