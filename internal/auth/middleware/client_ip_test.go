package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingnite/user-service/internal/auth/identity"
)

func newClientIPApp() *fiber.App {
	app := fiber.New()
	app.Use(ClientIP())
	app.Get("/ip", func(c *fiber.Ctx) error {
		return c.SendString(identity.ClientIP(c))
	})
	return app
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "x-forwarded-for single",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.5"},
			expected: "203.0.113.5",
		},
		{
			name:     "x-forwarded-for skips private hop",
			headers:  map[string]string{"X-Forwarded-For": "10.0.0.1, 203.0.113.5"},
			expected: "203.0.113.5",
		},
		{
			name:     "x-forwarded-for skips unknown",
			headers:  map[string]string{"X-Forwarded-For": "unknown, 203.0.113.5"},
			expected: "203.0.113.5",
		},
		{
			name: "header order wins over header quality",
			headers: map[string]string{
				"X-Real-IP":       "198.51.100.7",
				"X-Forwarded-For": "203.0.113.5",
			},
			expected: "203.0.113.5",
		},
		{
			name: "first header exhausted falls through to next",
			headers: map[string]string{
				"X-Forwarded-For": "10.0.0.1, 192.168.1.9",
				"Proxy-Client-IP": "198.51.100.7",
			},
			expected: "198.51.100.7",
		},
		{
			name:     "x-real-ip as last resort header",
			headers:  map[string]string{"X-Real-IP": "198.51.100.7"},
			expected: "198.51.100.7",
		},
		{
			name:     "private only falls back to peer address",
			headers:  map[string]string{"X-Forwarded-For": "10.0.0.1, 172.16.0.2, 192.168.1.9"},
			expected: "0.0.0.0",
		},
		{
			name:     "no headers falls back to peer address",
			headers:  map[string]string{},
			expected: "0.0.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newClientIPApp()

			req := httptest.NewRequest("GET", "/ip", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expected, readBody(t, resp))
		})
	}
}

func TestIsUsableCandidate(t *testing.T) {
	tests := []struct {
		ip       string
		expected bool
	}{
		{ip: "203.0.113.5", expected: true},
		{ip: "198.51.100.7", expected: true},
		{ip: "", expected: false},
		{ip: "unknown", expected: false},
		{ip: "UNKNOWN", expected: false},
		{ip: "10.0.0.1", expected: false},
		{ip: "172.16.0.2", expected: false},
		{ip: "192.168.1.9", expected: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, isUsableCandidate(tt.ip), "ip=%q", tt.ip)
	}
}
