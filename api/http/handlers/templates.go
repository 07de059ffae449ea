package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/resumeforge/resumeforge/api/http/presenter"
	"github.com/resumeforge/resumeforge/pkg/registry"
)

// TemplatesHandler serves the template catalog for the browser UI.
type TemplatesHandler struct {
	reg *registry.Registry
}

func NewTemplatesHandler(reg *registry.Registry) *TemplatesHandler {
	return &TemplatesHandler{reg: reg}
}

// List returns the catalog filtered by search text, category and tags.
// Query params: search, category ("all" or a category name), tags (CSV).
func (h *TemplatesHandler) List(c *fiber.Ctx) error {
	q := registry.Query{
		SearchText: c.Query("search"),
		Category:   registry.Category(c.Query("category", string(registry.CategoryAll))),
		Tags:       splitCSV(c.Query("tags")),
	}
	matched := registry.Filter(h.reg.ListAll(), q)
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"templates": matched,
		"total":     len(matched),
	})
}

// Tags returns the sorted union of every catalog tag for the tag picker.
func (h *TemplatesHandler) Tags(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"tags": registry.AllTags(h.reg.ListAll()),
	})
}

// Get returns one descriptor by id.
func (h *TemplatesHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	d, ok := h.reg.GetByID(id)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, "template not found: "+id)
	}
	return presenter.JSON(c, http.StatusOK, d)
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
