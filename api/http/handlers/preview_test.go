package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeforge/resumeforge/pkg/registry"
)

func previewApp(t *testing.T) *fiber.App {
	t.Helper()
	reg, err := registry.NewCatalogRegistry()
	require.NoError(t, err)
	h := NewPreviewHandler(reg, nil)

	app := fiber.New()
	app.Get("/preview/:templateId", h.Preview)
	return app
}

func TestPreviewRendersPlaceholderProfile(t *testing.T) {
	app := previewApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/preview/"+registry.DefaultTemplateID, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Empty(t, resp.Header.Get("X-Preview-Warning"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	html := string(body)
	assert.True(t, strings.Contains(html, "John Doe"), "placeholder profile should be rendered")
}

func TestPreviewUnknownTemplateFallsBack(t *testing.T) {
	app := previewApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/preview/does-not-exist", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	// Still a successful preview, just a warning plus the fallback template.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Preview-Warning"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}
