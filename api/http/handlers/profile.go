package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumeforge/resumeforge/api/http/presenter"
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// ProfileHandler reads and writes the caller's stored resume profile.
type ProfileHandler struct {
	svc resume.ProfileUseCase
}

func NewProfileHandler(svc resume.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Get returns the caller's profile; a fresh account gets the defaults.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	ownerID, err := callerID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid user identity")
	}
	data, err := h.svc.Get(c.Context(), ownerID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, data)
}

// Save validates and stores the caller's profile.
func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	ownerID, err := callerID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid user identity")
	}
	body := c.Body()
	if err := resume.ValidateProfileJSON(body); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	var data resume.ResumeData
	if err := json.Unmarshal(body, &data); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.svc.Save(c.Context(), ownerID, data); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"status": "saved"})
}

func callerID(c *fiber.Ctx) (uuid.UUID, error) {
	ownerIDStr, _ := c.Locals("userId").(string)
	return uuid.Parse(ownerIDStr)
}
