// Package extract turns an uploaded resume file into plain text plus named
// sections, either via the external parser service or a local parser.
package extract

import "context"

// ExtractedResume is what the text-extraction collaborator returns.
type ExtractedResume struct {
	Text     string            `json:"text"`
	Sections map[string]string `json:"sections,omitempty"`
}

// TextExtractor is the port the analysis pipeline depends on.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) (ExtractedResume, error)
}
