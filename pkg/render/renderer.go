package render

import (
	"github.com/resumeforge/resumeforge/pkg/resume"
)

// Document is the rendered output for one template.
type Document struct {
	TemplateID string
	HTML       []byte
}

// Renderer maps resume data to a visual document for one template.
// Implementations must be pure: no side effects, no I/O, no mutation of the
// input. Missing optional fields are rendered as absent content, never as an
// error. HiddenSections and SectionOrder from the data's styles are binding,
// and custom sections are rendered generically regardless of theme.
type Renderer interface {
	Render(data resume.ResumeData) (Document, error)
}
