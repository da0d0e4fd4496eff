package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/lingnite/user-service/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_code_verifier.go -package=mocks github.com/lingnite/user-service/internal/auth/service CodeVerifier

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/lingnite/user-service/config"
	"github.com/lingnite/user-service/internal/auth/domain"
	"github.com/lingnite/user-service/internal/auth/dto"
	apperrors "github.com/lingnite/user-service/internal/errors"
	"github.com/lingnite/user-service/pkg/constant"
)

// CodeVerifier is the slice of the verification flow the orchestrator needs.
type CodeVerifier interface {
	Verify(ctx context.Context, email, code, purpose string) (bool, error)
}

// AuthService reconciles the login and registration strategies: email+code,
// email+password, username+password and username registration. Each call
// runs its database work inside one transaction; a failure anywhere in the
// unit rolls back everything, including an auto-provisioned user row.
type AuthService struct {
	repo  domain.UserRepository
	codes CodeVerifier
	cfg   *config.Config
}

func NewAuthService(repo domain.UserRepository, codes CodeVerifier, cfg *config.Config) *AuthService {
	return &AuthService{repo: repo, codes: codes, cfg: cfg}
}

// LoginByEmail dispatches on which credential field is present: a
// verification code selects the code path, otherwise a password selects the
// password path. The code path auto-provisions a user for unknown emails.
func (s *AuthService) LoginByEmail(ctx context.Context, input dto.EmailLoginInput, clientIP string) (*domain.User, error) {
	if input.VerificationCode == "" && input.Password == "" {
		return nil, apperrors.Validation("illegal login request")
	}

	var user *domain.User

	err := s.repo.InTx(ctx, func(repo domain.UserRepository) error {
		var err error
		if input.VerificationCode != "" {
			user, err = s.handleEmailCodeLogin(ctx, repo, input)
		} else {
			user, err = s.handleEmailPasswordLogin(ctx, repo, input)
		}
		if err != nil {
			return err
		}

		return s.updateLoginInfo(ctx, repo, user, clientIP)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// LoginByUsername authenticates with username and password. Unlike the email
// path it rejects missing or inactive users before the password check, so
// its error surface distinguishes existence from a wrong password.
func (s *AuthService) LoginByUsername(ctx context.Context, input dto.UsernameLoginInput, clientIP string) (*domain.User, error) {
	var user *domain.User

	err := s.repo.InTx(ctx, func(repo domain.UserRepository) error {
		var err error
		user, err = getActiveUserByUsername(ctx, repo, input.Username)
		if err != nil {
			return err
		}

		if err := verifyPassword(user, input.Password); err != nil {
			return err
		}

		return s.updateLoginInfo(ctx, repo, user, clientIP)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// RegisterByUsername creates an account with a username and password. The
// feature is gated by configuration and defaults to off.
func (s *AuthService) RegisterByUsername(ctx context.Context, input dto.RegisterInput, clientIP string) (*domain.User, error) {
	if !s.cfg.RegistrationEnabled {
		return nil, apperrors.ErrRegistrationDisabled
	}

	if input.Password == "" || input.Password != input.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.ErrRegistrationFailed
	}

	nickname := input.Nickname
	if nickname == "" {
		nickname = input.Username
	}

	email := input.Email
	if !s.cfg.EmailRequired {
		email = ""
	}

	user := &domain.User{
		Username:      input.Username,
		Email:         email,
		PasswordHash:  string(hash),
		Nickname:      nickname,
		Status:        domain.StatusNormal,
		EmailVerified: false,
	}

	err = s.repo.InTx(ctx, func(repo domain.UserRepository) error {
		if err := s.checkUniqueness(ctx, repo, input); err != nil {
			return err
		}

		if err := repo.Insert(ctx, user); err != nil {
			return apperrors.ErrRegistrationFailed
		}
		if user.ID == 0 {
			return apperrors.ErrRegistrationFailed
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("user registered: userId=%d username=%s ip=%s", user.ID, user.Username, clientIP)

	return user, nil
}

func (s *AuthService) handleEmailCodeLogin(ctx context.Context, repo domain.UserRepository, input dto.EmailLoginInput) (*domain.User, error) {
	ok, err := s.codes.Verify(ctx, input.Email, input.VerificationCode, constant.PurposeLogin)
	if err != nil || !ok {
		return nil, apperrors.ErrVerificationCodeError
	}

	user, err := repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperrors.ErrLoginFailed
	}

	if user == nil {
		// Registration by side effect: a verified code proves ownership
		// of the address, so an unknown email becomes a new account.
		user, err = provisionUserByEmail(ctx, repo, input.Email)
		if err != nil {
			return nil, err
		}
		log.Printf("user auto-registered via email code: userId=%d email=%s", user.ID, user.Email)
	}

	if user.IsInactive() {
		return nil, apperrors.ErrUserDisabled
	}

	return user, nil
}

func (s *AuthService) handleEmailPasswordLogin(ctx context.Context, repo domain.UserRepository, input dto.EmailLoginInput) (*domain.User, error) {
	user, err := repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperrors.ErrLoginFailed
	}

	// Missing user, missing hash and wrong password all collapse into the
	// same answer to block account enumeration.
	if user == nil || user.PasswordHash == "" {
		return nil, apperrors.ErrEmailOrPasswordIncorrect
	}

	// A disabled account fails the same way whether or not the password is
	// right, so the check comes first.
	if user.IsInactive() {
		return nil, apperrors.ErrUserDisabled
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, apperrors.ErrEmailOrPasswordIncorrect
	}

	return user, nil
}

func getActiveUserByUsername(ctx context.Context, repo domain.UserRepository, username string) (*domain.User, error) {
	user, err := repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.ErrLoginFailed
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user.IsInactive() {
		return nil, apperrors.ErrUserDisabled
	}
	return user, nil
}

func verifyPassword(user *domain.User, password string) error {
	if user.PasswordHash == "" {
		return apperrors.ErrPasswordIncorrect
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return apperrors.ErrPasswordIncorrect
	}
	return nil
}

func (s *AuthService) updateLoginInfo(ctx context.Context, repo domain.UserRepository, user *domain.User, clientIP string) error {
	user.UpdateLoginInfo(clientIP)

	if err := repo.UpdateLoginInfo(ctx, user); err != nil {
		log.Printf("warn: failed to update login info for user %d: %v", user.ID, err)
		return apperrors.ErrLoginFailed
	}

	log.Printf("user logged in: userId=%d ip=%s loginCount=%d", user.ID, clientIP, user.LoginCount)

	return nil
}

func (s *AuthService) checkUniqueness(ctx context.Context, repo domain.UserRepository, input dto.RegisterInput) error {
	if s.cfg.CheckUsernameUnique {
		existing, err := repo.FindByUsername(ctx, input.Username)
		if err != nil {
			return apperrors.ErrRegistrationFailed
		}
		if existing != nil {
			return apperrors.ErrUsernameTaken
		}
	}

	if s.cfg.CheckEmailUnique && input.Email != "" {
		existing, err := repo.FindByEmail(ctx, input.Email)
		if err != nil {
			return apperrors.ErrRegistrationFailed
		}
		if existing != nil {
			return apperrors.ErrEmailTaken
		}
	}

	return nil
}

func provisionUserByEmail(ctx context.Context, repo domain.UserRepository, email string) (*domain.User, error) {
	username, err := uniqueUsername(ctx, repo, usernameFromEmail(email))
	if err != nil {
		return nil, apperrors.ErrLoginFailed
	}

	user := &domain.User{
		Username:      username,
		Email:         email,
		Nickname:      username,
		Status:        domain.StatusNormal,
		EmailVerified: true,
	}

	if err := repo.Insert(ctx, user); err != nil {
		return nil, apperrors.ErrLoginFailed
	}
	if user.ID == 0 {
		return nil, apperrors.ErrLoginFailed
	}

	return user, nil
}

// uniqueUsername probes for a free username, appending a random numeric
// suffix on collision. Bounded so a pathological dataset cannot loop forever.
func uniqueUsername(ctx context.Context, repo domain.UserRepository, base string) (string, error) {
	candidate := base
	for attempt := 0; attempt < 10; attempt++ {
		existing, err := repo.FindByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}

		n, err := rand.Int(rand.Reader, big.NewInt(10000))
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s_%04d", base, n.Int64())
	}
	return "", fmt.Errorf("could not generate a unique username for %q", base)
}

// usernameFromEmail derives a username from the address local part, keeping
// only characters valid in a username.
func usernameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}

	var b strings.Builder
	for _, r := range strings.ToLower(local) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}

	username := b.String()
	if len(username) > 20 {
		username = username[:20]
	}
	if username == "" {
		username = "user"
	}
	return username
}
