package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumeforge/resumeforge/api/http/presenter"
	"github.com/resumeforge/resumeforge/pkg/preview"
	"github.com/resumeforge/resumeforge/pkg/registry"
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// PreviewHandler renders a template with the caller's profile, or with the
// placeholder dataset when no profile exists yet.
type PreviewHandler struct {
	reg      *registry.Registry
	profiles resume.ProfileUseCase
}

func NewPreviewHandler(reg *registry.Registry, profiles resume.ProfileUseCase) *PreviewHandler {
	return &PreviewHandler{reg: reg, profiles: profiles}
}

// Preview serves GET /preview/:templateId as text/html. An unknown or
// unloadable template is not an error: the fallback renderer is used and
// the warning is exposed in the X-Preview-Warning header.
func (h *PreviewHandler) Preview(c *fiber.Ctx) error {
	templateID := c.Params("templateId")
	if templateID == "" {
		templateID = registry.DefaultTemplateID
	}

	data := h.callerData(c)
	session := preview.NewSession(h.reg, data)
	snap, err := session.Load(c.Context(), templateID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "preview failed: "+err.Error())
	}
	if snap.Warning != "" {
		c.Set("X-Preview-Warning", snap.Warning)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(http.StatusOK).Send(snap.Document.HTML)
}

// callerData loads the authed caller's profile when available. Anonymous
// callers (or storage failures) get the default empty profile, which the
// session substitutes with placeholder data.
func (h *PreviewHandler) callerData(c *fiber.Ctx) resume.ResumeData {
	if h.profiles == nil {
		return resume.DefaultResumeData()
	}
	ownerIDStr, _ := c.Locals("userId").(string)
	ownerID, err := uuid.Parse(ownerIDStr)
	if err != nil {
		return resume.DefaultResumeData()
	}
	data, err := h.profiles.Get(c.Context(), ownerID)
	if err != nil {
		return resume.DefaultResumeData()
	}
	return data
}
