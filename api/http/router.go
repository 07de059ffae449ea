package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/resumeforge/resumeforge/api/http/handlers"
)

// Handlers bundles every route handler the router wires up.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Health    *handlers.HealthHandler
	Templates *handlers.TemplatesHandler
	Preview   *handlers.PreviewHandler
	Profile   *handlers.ProfileHandler
	Export    *handlers.ExportHandler
	Analyze   *handlers.AnalyzeHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")

	// Analysis endpoint kept at /api for compatibility with existing clients.
	api.Post("/analyze-resume", h.Analyze.Analyze)

	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)

	// Template catalog and live preview are public.
	tg := v1.Group("/templates")
	tg.Get("/", h.Templates.List)
	tg.Get("/tags", h.Templates.Tags)
	tg.Get("/:id", h.Templates.Get)

	v1.Get("/preview/:templateId", h.Preview.Preview)

	// Profile storage and PDF export require an authenticated caller.
	p := v1.Group("/profile", authMW)
	p.Get("/", h.Profile.Get)
	p.Post("/", h.Profile.Save)

	v1.Post("/export", authMW, h.Export.Export)
}
