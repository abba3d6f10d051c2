package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(zerolog.Nop()).Middleware())
	app.Use(NewErrorMiddleware(zerolog.Nop()).Middleware())
	return app
}

func do(t *testing.T, app *fiber.App, path string) (int, response.SemanticResponse, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env response.SemanticResponse
	require.NoError(t, json.Unmarshal(body, &env))
	return resp.StatusCode, env, resp.Header.Get(HeaderRequestID)
}

func TestErrorMiddleware(t *testing.T) {
	app := newTestApp()
	app.Get("/bad", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusBadRequest, "Invalid job type", map[string]string{"field": "jobType"}, nil)
	})
	app.Get("/boom", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db exploded", nil, errors.New("secret"))
	})
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("oops")
	})
	app.Get("/fiber", func(c fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return errors.New("unexpected")
	})

	status, env, rid := do(t, app, "/bad")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid job type", env.Message)
	assert.Equal(t, map[string]any{"field": "jobType"}, env.Data)
	assert.NotEmpty(t, rid)

	for _, path := range []string{"/boom", "/panic", "/plain"} {
		status, env, _ = do(t, app, path)
		assert.Equal(t, fiber.StatusInternalServerError, status, path)
		assert.Equal(t, response.MessageInternalServerError, env.Message, path)
		assert.Nil(t, env.Data, path)
	}

	status, env, _ = do(t, app, "/fiber")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Not Found", env.Message)
}

func TestAccessLogKeepsIncomingRequestID(t *testing.T) {
	app := newTestApp()
	app.Get("/ok", func(c fiber.Ctx) error {
		return response.Success(c, fiber.StatusOK, "", requestID(c))
	})

	req := httptest.NewRequest(fiber.MethodGet, "/ok", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
}
