package admin

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datainclusion/search-backend/config"
)

func TestPostReindexConflictWhileRunning(t *testing.T) {
	setReindexState(true, "Processing...")
	t.Cleanup(func() { setReindexState(false, "") })

	app := fiber.New()
	app.Post("/reindex", PostReindex(&config.Config{}, nil))

	resp, err := app.Test(httptest.NewRequest("POST", "/reindex", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestGetReindexStatus(t *testing.T) {
	setReindexState(false, "Complete! Took 3s")
	t.Cleanup(func() { setReindexState(false, "") })

	app := fiber.New()
	app.Get("/reindex-status", GetReindexStatus())

	resp, err := app.Test(httptest.NewRequest("GET", "/reindex-status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var out ReindexStatusResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.False(t, out.Running)
	assert.Equal(t, "Complete! Took 3s", out.Status)
}
