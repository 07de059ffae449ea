package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeforge/resumeforge/pkg/registry"
)

func templatesApp(t *testing.T) *fiber.App {
	t.Helper()
	reg, err := registry.NewCatalogRegistry()
	require.NoError(t, err)
	h := NewTemplatesHandler(reg)

	app := fiber.New()
	app.Get("/templates", h.List)
	app.Get("/templates/tags", h.Tags)
	app.Get("/templates/:id", h.Get)
	return app
}

type listResponse struct {
	Templates []registry.Descriptor `json:"templates"`
	Total     int                   `json:"total"`
}

func doJSON(t *testing.T, app *fiber.App, url string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
	return resp.StatusCode
}

func TestTemplatesListUnfiltered(t *testing.T) {
	app := templatesApp(t)

	var got listResponse
	status := doJSON(t, app, "/templates", &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 45, got.Total)
	assert.Len(t, got.Templates, 45)
}

func TestTemplatesListFiltered(t *testing.T) {
	app := templatesApp(t)

	var got listResponse
	status := doJSON(t, app, "/templates?search=minimal&category=all", &got)
	assert.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, got.Templates)
	for _, d := range got.Templates {
		assert.Contains(t, d.Name+" "+d.Description, "inimal")
	}
}

func TestTemplatesListByCategoryAndTags(t *testing.T) {
	app := templatesApp(t)

	var all listResponse
	doJSON(t, app, "/templates", &all)
	var filtered listResponse
	status := doJSON(t, app, "/templates?category=Professional", &filtered)
	assert.Equal(t, http.StatusOK, status)
	assert.Greater(t, filtered.Total, 0)
	assert.Less(t, filtered.Total, all.Total)
	for _, d := range filtered.Templates {
		assert.Equal(t, registry.CategoryProfessional, d.Category)
	}
}

func TestTemplatesTags(t *testing.T) {
	app := templatesApp(t)

	var got struct {
		Tags []string `json:"tags"`
	}
	status := doJSON(t, app, "/templates/tags", &got)
	assert.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, got.Tags)
	for i := 1; i < len(got.Tags); i++ {
		assert.LessOrEqual(t, got.Tags[i-1], got.Tags[i])
	}
}

func TestTemplatesGet(t *testing.T) {
	app := templatesApp(t)

	var got registry.Descriptor
	status := doJSON(t, app, "/templates/"+registry.DefaultTemplateID, &got)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, registry.DefaultTemplateID, got.ID)

	var errBody struct {
		Error string `json:"error"`
	}
	status = doJSON(t, app, "/templates/does-not-exist", &errBody)
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, errBody.Error)
}
