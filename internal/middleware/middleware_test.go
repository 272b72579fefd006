package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalog/internal/middleware"
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAllowedOrigin(t *testing.T) {
	allowed := middleware.IsAllowedOrigin("http://localhost:5173")

	assert.True(t, allowed("http://localhost:5173"))
	assert.False(t, allowed("http://localhost:5174"))
	assert.False(t, allowed("https://localhost:5173"))
	assert.False(t, allowed(""))

	none := middleware.IsAllowedOrigin("")
	assert.False(t, none(""))
	assert.False(t, none("http://localhost:5173"))
}

func newCORSApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.CORS(middleware.IsAllowedOrigin("http://localhost:5173")))
	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"msg": "ok"})
	})
	return app
}

func TestCORS_RejectsForeignOrigin(t *testing.T) {
	app := newCORSApp()

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.Header.Set("Origin", "http://evil.example")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Denegado por Cors", body["error"])
}

func TestCORS_AllowsTrustedOrigin(t *testing.T) {
	app := newCORSApp()

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestCORS_NoOriginPasses(t *testing.T) {
	app := newCORSApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandleInputErrors(t *testing.T) {
	engine := validation.New()
	app := fiber.New()
	reached := false
	app.Get("/products/:id",
		engine.Check(validation.Param("id", "int", "ID invalido")),
		middleware.HandleInputErrors,
		func(c *fiber.Ctx) error {
			reached = true
			return c.SendStatus(fiber.StatusNoContent)
		},
	)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/products/abc", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, reached, "handler must not run after a failure")
	var body struct {
		Errors []validation.Failure `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "ID invalido", body.Errors[0].Msg)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/products/12", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.True(t, reached)
}
