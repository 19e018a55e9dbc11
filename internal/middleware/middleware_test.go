package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"go-warehouse-ws/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(tokens *jwt.Manager, roles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{RequireAuth(tokens)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalUserCode).(string))
	})
	app.Get("/secret", handlers...)
	return app
}

func TestRequireAuth(t *testing.T) {
	tokens := jwt.NewManager("test-secret", time.Hour)
	app := newProtectedApp(tokens)

	token, err := tokens.GenerateToken(jwt.Subject{ObjectID: 1, UserCode: "U-1", Role: "seller"})
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized},
		{"bad token", "Bearer nope", fiber.StatusUnauthorized},
		{"valid", "Bearer " + token, fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/secret", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tokens := jwt.NewManager("test-secret", time.Hour)
	app := newProtectedApp(tokens, "admin")

	seller, _ := tokens.GenerateToken(jwt.Subject{UserCode: "U-1", Role: "seller"})
	admin, _ := tokens.GenerateToken(jwt.Subject{UserCode: "U-2", Role: "admin"})

	req := httptest.NewRequest("GET", "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+seller)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/secret", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTimeout_SetsDeadline(t *testing.T) {
	app := fiber.New()
	app.Use(Timeout(2 * time.Second))
	app.Get("/", func(c *fiber.Ctx) error {
		deadline, ok := c.UserContext().Deadline()
		if !ok || time.Until(deadline) > 2*time.Second {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
