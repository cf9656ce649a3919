package models

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorResponseFor(t *testing.T, status int, err error) (int, map[string]string) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return RespondWithError(c, status, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestRespondWithError(t *testing.T) {
	t.Run("internal cause never reaches the caller", func(t *testing.T) {
		status, body := errorResponseFor(t, fiber.StatusInternalServerError,
			NewInternalError(errors.New("pq: connection refused")))

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "Internal server error", body["error"])
		assert.Equal(t, ErrCodeInternal, body["code"])
		_, hasDetails := body["details"]
		assert.False(t, hasDetails, "internal error text belongs in the logs only")
	})

	t.Run("app error carries message and code", func(t *testing.T) {
		status, body := errorResponseFor(t, fiber.StatusNotFound,
			NewNotFoundError("Post not found"))

		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "Post not found", body["error"])
		assert.Equal(t, ErrCodeNotFound, body["code"])
	})

	t.Run("plain error serialized as message only", func(t *testing.T) {
		status, body := errorResponseFor(t, fiber.StatusInternalServerError,
			errors.New("boom"))

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "boom", body["error"])
		assert.Empty(t, body["code"])
	})
}
