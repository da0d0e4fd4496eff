package service

//go:generate mockgen -destination=../../mocks/mock_token_issuer.go -package=mocks github.com/lingnite/user-service/internal/auth/service TokenIssuer

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lingnite/user-service/internal/auth/dto"
	apperrors "github.com/lingnite/user-service/internal/errors"
	"github.com/lingnite/user-service/pkg/constant"
)

type TokenIssuer interface {
	IssueAccessToken(subject string, claims map[string]interface{}) (*dto.TokenInfo, error)
	IssueRefreshToken(subject string, claims map[string]interface{}) (*dto.TokenInfo, error)
	ExtractSubject(token string) (string, error)
	ExtractClaim(token, key string) (interface{}, error)
	IsExpired(token string) bool
	AccessTokenExpirySeconds() int64
	RefreshTokenExpirySeconds() int64
}

// TokenService mints and verifies stateless, self-contained tokens. There is
// no server-side session table, so an issued token stays valid until its
// natural expiry.
type TokenService struct {
	Secret        string
	Issuer        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

const (
	defaultAccessExpiryMinutes  = 60
	defaultRefreshExpiryMinutes = 7 * 24 * 60
)

func NewTokenService(secret, issuer string, accessMinutes, refreshMinutes int) *TokenService {
	// A token must expire strictly after it is issued; a zero or negative
	// TTL from configuration falls back to the default.
	if accessMinutes <= 0 {
		accessMinutes = defaultAccessExpiryMinutes
	}
	if refreshMinutes <= 0 {
		refreshMinutes = defaultRefreshExpiryMinutes
	}

	return &TokenService{
		Secret:        secret,
		Issuer:        issuer,
		AccessExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

func (ts *TokenService) IssueAccessToken(subject string, claims map[string]interface{}) (*dto.TokenInfo, error) {
	return ts.issue(subject, claims, constant.TokenTypeAccess, ts.AccessExpiry)
}

func (ts *TokenService) IssueRefreshToken(subject string, claims map[string]interface{}) (*dto.TokenInfo, error) {
	return ts.issue(subject, claims, constant.TokenTypeRefresh, ts.RefreshExpiry)
}

func (ts *TokenService) issue(subject string, extra map[string]interface{}, tokenType string, expiry time.Duration) (*dto.TokenInfo, error) {
	now := time.Now()
	expiresAt := now.Add(expiry)

	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}

	// Registered claims always win over caller-supplied ones.
	claims["sub"] = subject
	claims["iss"] = ts.Issuer
	claims["jti"] = uuid.NewString()
	claims["iat"] = now.Unix()
	claims["exp"] = expiresAt.Unix()
	claims[constant.ClaimTokenType] = tokenType

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return nil, err
	}

	return &dto.TokenInfo{
		Token:     token,
		ExpiresAt: expiresAt.UnixMilli(),
		ExpiresIn: int64(expiry.Seconds()),
		Type:      tokenType,
	}, nil
}

// ExtractSubject verifies signature and expiry and returns the subject.
// Every failure mode collapses into ErrInvalidToken; callers never learn
// whether a token was malformed, expired or badly signed.
func (ts *TokenService) ExtractSubject(tokenString string) (string, error) {
	claims, err := ts.parse(tokenString)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", apperrors.ErrInvalidToken
	}

	return subject, nil
}

func (ts *TokenService) ExtractClaim(tokenString, key string) (interface{}, error) {
	claims, err := ts.parse(tokenString)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	value, ok := claims[key]
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	return value, nil
}

// IsExpired reports whether the token is unusable. A token that fails to
// parse at all counts as expired.
func (ts *TokenService) IsExpired(tokenString string) bool {
	_, err := ts.parse(tokenString)
	return err != nil
}

func (ts *TokenService) parse(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return []byte(ts.Secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

func (ts *TokenService) AccessTokenExpirySeconds() int64 {
	return int64(ts.AccessExpiry.Seconds())
}

func (ts *TokenService) RefreshTokenExpirySeconds() int64 {
	return int64(ts.RefreshExpiry.Seconds())
}
