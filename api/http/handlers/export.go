package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumeforge/resumeforge/api/http/presenter"
	"github.com/resumeforge/resumeforge/pkg/export"
	"github.com/resumeforge/resumeforge/pkg/registry"
	"github.com/resumeforge/resumeforge/pkg/render"
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// ExportHandler turns the caller's profile into a downloadable PDF.
type ExportHandler struct {
	reg      *registry.Registry
	profiles resume.ProfileUseCase
	pdf      export.PDFRenderer
}

func NewExportHandler(reg *registry.Registry, profiles resume.ProfileUseCase, pdf export.PDFRenderer) *ExportHandler {
	return &ExportHandler{reg: reg, profiles: profiles, pdf: pdf}
}

type exportRequest struct {
	TemplateID string `json:"templateId"`
}

// Export renders the caller's profile through the requested template (the
// profile's selected template when omitted, the default when unknown) and
// returns the printed PDF.
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	ownerIDStr, _ := c.Locals("userId").(string)
	ownerID, err := uuid.Parse(ownerIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid user identity")
	}

	var req exportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
		}
	}

	data, err := h.profiles.Get(c.Context(), ownerID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}

	templateID := req.TemplateID
	if templateID == "" {
		templateID = data.SelectedTemplate
	}
	renderer := h.resolveRenderer(templateID)

	doc, err := renderer.Render(resume.EffectiveData(data))
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "render failed: "+err.Error())
	}
	pdfBytes, err := h.pdf.RenderPDF(c.Context(), doc.HTML)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "pdf export failed: "+err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Status(http.StatusOK).Send(pdfBytes)
}

func (h *ExportHandler) resolveRenderer(templateID string) render.Renderer {
	if d, ok := h.reg.GetByID(templateID); ok {
		if r, err := d.Loader(); err == nil {
			return r
		}
	}
	return render.Fallback()
}
