package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingnite/user-service/internal/auth/domain"
	"github.com/lingnite/user-service/internal/auth/identity"
	"github.com/lingnite/user-service/internal/auth/service"
	"github.com/lingnite/user-service/internal/mocks"
)

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func newAuthApp(repo domain.UserRepository, tokens service.TokenIssuer) *fiber.App {
	app := fiber.New()
	app.Use(ClientIP())
	app.Use(Authenticate(repo, tokens))

	app.Get("/whoami", func(c *fiber.Ctx) error {
		if id, ok := identity.CurrentUserID(c); ok {
			return c.SendString(strconv.FormatInt(id, 10))
		}
		return c.SendString("anonymous")
	})
	app.Get("/protected", RequireUser(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return app
}

func setupAuthenticate(t *testing.T) (*fiber.App, *mocks.MockUserRepository, *service.TokenService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockUserRepository(ctrl)
	tokens := service.NewTokenService("test-secret", "lingnite", 60, 10080)

	return newAuthApp(repo, tokens), repo, tokens
}

func TestAuthenticate_Anonymous(t *testing.T) {
	app, _, _ := setupAuthenticate(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "anonymous", readBody(t, resp))
}

func TestAuthenticate_BearerToken(t *testing.T) {
	app, repo, tokens := setupAuthenticate(t)

	info, err := tokens.IssueAccessToken("42", nil)
	require.NoError(t, err)

	repo.EXPECT().FindByID(gomock.Any(), int64(42)).
		Return(&domain.User{ID: 42, Username: "alice", Status: domain.StatusNormal}, nil)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+info.Token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "42", readBody(t, resp))
}

func TestAuthenticate_QueryParamToken(t *testing.T) {
	app, repo, tokens := setupAuthenticate(t)

	info, err := tokens.IssueAccessToken("42", nil)
	require.NoError(t, err)

	repo.EXPECT().FindByID(gomock.Any(), int64(42)).
		Return(&domain.User{ID: 42, Status: domain.StatusNormal}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami?access_token="+info.Token, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "42", readBody(t, resp))
}

func TestAuthenticate_BadTokensStayAnonymous(t *testing.T) {
	expiredIssuer := &service.TokenService{
		Secret:        "test-secret",
		Issuer:        "lingnite",
		AccessExpiry:  -time.Minute,
		RefreshExpiry: -time.Minute,
	}
	expired, err := expiredIssuer.IssueAccessToken("42", nil)
	require.NoError(t, err)

	foreignIssuer := service.NewTokenService("another-secret", "lingnite", 60, 10080)
	foreign, err := foreignIssuer.IssueAccessToken("42", nil)
	require.NoError(t, err)

	namedIssuer := service.NewTokenService("test-secret", "lingnite", 60, 10080)
	named, err := namedIssuer.IssueAccessToken("alice", nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "expired", token: expired.Token},
		{name: "wrong secret", token: foreign.Token},
		{name: "non numeric subject", token: named.Token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The repository must never be consulted for a bad token.
			app, _, _ := setupAuthenticate(t)

			req := httptest.NewRequest("GET", "/whoami", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "anonymous", readBody(t, resp))
		})
	}
}

func TestAuthenticate_UnusableUserStaysAnonymous(t *testing.T) {
	tests := []struct {
		name string
		user *domain.User
	}{
		{name: "user missing", user: nil},
		{name: "user disabled", user: &domain.User{ID: 42, Status: domain.StatusDisabled}},
		{name: "user deleted", user: &domain.User{ID: 42, Status: domain.StatusNormal, Deleted: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, repo, tokens := setupAuthenticate(t)

			info, err := tokens.IssueAccessToken("42", nil)
			require.NoError(t, err)

			repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(tt.user, nil)

			req := httptest.NewRequest("GET", "/whoami", nil)
			req.Header.Set("Authorization", "Bearer "+info.Token)

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, "anonymous", readBody(t, resp))
		})
	}
}

func TestAuthenticate_NoLeakBetweenRequests(t *testing.T) {
	app, repo, tokens := setupAuthenticate(t)

	info, err := tokens.IssueAccessToken("42", nil)
	require.NoError(t, err)

	repo.EXPECT().FindByID(gomock.Any(), int64(42)).
		Return(&domain.User{ID: 42, Status: domain.StatusNormal}, nil)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+info.Token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "42", readBody(t, resp))
	resp.Body.Close()

	// The identity slot is request scoped; the next request on the same app
	// must start clean.
	resp, err = app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "anonymous", readBody(t, resp))
}

func TestRequireUser(t *testing.T) {
	app, repo, tokens := setupAuthenticate(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	info, err := tokens.IssueAccessToken("42", nil)
	require.NoError(t, err)
	repo.EXPECT().FindByID(gomock.Any(), int64(42)).
		Return(&domain.User{ID: 42, Status: domain.StatusNormal}, nil)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+info.Token)

	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
