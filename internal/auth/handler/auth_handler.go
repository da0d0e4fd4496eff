package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lingnite/user-service/config"
	"github.com/lingnite/user-service/internal/auth/domain"
	"github.com/lingnite/user-service/internal/auth/dto"
	"github.com/lingnite/user-service/internal/auth/identity"
	"github.com/lingnite/user-service/internal/auth/service"
	apperrors "github.com/lingnite/user-service/internal/errors"
	"github.com/lingnite/user-service/pkg/constant"
	"github.com/lingnite/user-service/pkg/response"
)

type AuthHandler struct {
	authService  *service.AuthService
	verification *service.VerificationService
	tokens       service.TokenIssuer
	repo         domain.UserRepository
	cfg          *config.Config
}

func NewAuthHandler(authService *service.AuthService, verification *service.VerificationService,
	tokens service.TokenIssuer, repo domain.UserRepository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		verification: verification,
		tokens:       tokens,
		repo:         repo,
		cfg:          cfg,
	}
}

// EmailLogin handles email+password and email+code login. With a valid code
// and an unknown email the account is auto-provisioned.
func (h *AuthHandler) EmailLogin(c *fiber.Ctx) error {
	var input dto.EmailLoginInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.Validation("invalid input")
	}
	if input.Email == "" {
		return apperrors.Validation("email is required")
	}

	clientIP := identity.ClientIPOrDefault(c, constant.DefaultClientIP)

	user, err := h.authService.LoginByEmail(c.Context(), input, clientIP)
	if err != nil {
		return err
	}

	return h.respondWithTokens(c, user)
}

func (h *AuthHandler) UsernameLogin(c *fiber.Ctx) error {
	var input dto.UsernameLoginInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.Validation("invalid input")
	}
	if input.Username == "" || input.Password == "" {
		return apperrors.Validation("username and password are required")
	}

	clientIP := identity.ClientIPOrDefault(c, constant.DefaultClientIP)

	user, err := h.authService.LoginByUsername(c.Context(), input, clientIP)
	if err != nil {
		return err
	}

	return h.respondWithTokens(c, user)
}

// UsernameRegistration registers a new account and logs it in.
func (h *AuthHandler) UsernameRegistration(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.Validation("invalid input")
	}
	if input.Username == "" || input.Password == "" {
		return apperrors.Validation("username and password are required")
	}

	clientIP := identity.ClientIPOrDefault(c, constant.DefaultClientIP)

	user, err := h.authService.RegisterByUsername(c.Context(), input, clientIP)
	if err != nil {
		return err
	}

	return h.respondWithTokens(c, user)
}

func (h *AuthHandler) SendVerificationEmail(c *fiber.Ctx) error {
	var input dto.VerificationEmailInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.Validation("invalid input")
	}
	if input.Email == "" {
		return apperrors.Validation("email is required")
	}

	switch input.Purpose {
	case constant.PurposeLogin, constant.PurposeResetPassword, constant.PurposeChangeEmail:
	default:
		return apperrors.Validation("unknown verification purpose")
	}

	result, err := h.verification.Send(c.Context(), input.Email, input.Purpose)
	if err != nil {
		return err
	}

	return response.Success(c, result)
}

// Refresh mints a new token pair from a refresh token supplied in the body
// or, failing that, the refresh cookie, and rotates the cookie.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	// Body is optional; parse failures just mean "use the cookie".
	_ = c.BodyParser(&input)

	refreshToken := input.RefreshToken
	if refreshToken == "" {
		refreshToken = c.Cookies(constant.RefreshTokenCookie)
	}
	if refreshToken == "" {
		return apperrors.ErrInvalidToken
	}

	subject, err := h.tokens.ExtractSubject(refreshToken)
	if err != nil {
		return err
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	user, err := h.repo.FindByID(c.Context(), userID)
	if err != nil {
		return apperrors.ErrRefreshFailed
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}
	if user.IsInactive() {
		return apperrors.ErrUserDisabled
	}

	return h.respondWithTokens(c, user)
}

// Logout clears the refresh cookie. The access token stays valid until its
// natural expiry; stateless tokens cannot be revoked server-side.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshTokenCookie,
		Value:    "",
		Path:     "/",
		Domain:   h.cfg.CookieDomain,
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
	})

	return response.Success(c, nil)
}

// Me returns the authenticated user's profile from the identity context.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := identity.CurrentUser(c)
	if user == nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	return response.Success(c, dto.NewUserOutput(user))
}

func (h *AuthHandler) respondWithTokens(c *fiber.Ctx, user *domain.User) error {
	subject := strconv.FormatInt(user.ID, 10)

	accessInfo, err := h.tokens.IssueAccessToken(subject, nil)
	if err != nil {
		return apperrors.ErrLoginFailed
	}
	refreshInfo, err := h.tokens.IssueRefreshToken(subject, nil)
	if err != nil {
		return apperrors.ErrLoginFailed
	}

	h.setRefreshCookie(c, refreshInfo.Token)

	return response.Success(c, dto.LoginResponse{
		Nickname:              user.Nickname,
		AvatarURL:             user.AvatarURL,
		AccessToken:           accessInfo.Token,
		RefreshToken:          refreshInfo.Token,
		AccessTokenExpiresIn:  accessInfo.ExpiresIn,
		RefreshTokenExpiresIn: refreshInfo.ExpiresIn,
	})
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshTokenCookie,
		Value:    token,
		Path:     "/",
		Domain:   h.cfg.CookieDomain,
		MaxAge:   int(h.tokens.RefreshTokenExpirySeconds()),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
	})
}
