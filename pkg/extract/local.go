package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// LocalExtractor parses resumes in-process. It is the collaborator wired
// when no external parser service is configured.
// Supports: .pdf and .docx
type LocalExtractor struct{}

func NewLocalExtractor() *LocalExtractor { return &LocalExtractor{} }

func (e *LocalExtractor) Extract(ctx context.Context, filename string, data []byte) (ExtractedResume, error) {
	if err := ctx.Err(); err != nil {
		return ExtractedResume{}, err
	}
	text, err := parseResumeText(filename, data)
	if err != nil {
		return ExtractedResume{}, err
	}
	return ExtractedResume{
		Text:     text,
		Sections: splitSections(text),
	}, nil
}

func parseResumeText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	default:
		return "", errors.New("unsupported file format: only pdf and docx are allowed")
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Paragraph boundaries become newlines before tags are stripped.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := regexp.MustCompile(`<[^>]+>`).ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

func normalizeWhitespace(s string) string {
	s = regexp.MustCompile(`[ \t\r\f\v]+`).ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	// Preserve newlines but collapse runs.
	s = regexp.MustCompile(`\n+`).ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// sectionHeadings maps a canonical section name to the headings commonly
// found in resumes.
var sectionHeadings = map[string][]string{
	"summary":    {"SUMMARY", "OBJECTIVE", "PROFILE"},
	"experience": {"EXPERIENCE", "WORK EXPERIENCE", "PROFESSIONAL EXPERIENCE", "EMPLOYMENT HISTORY", "WORK HISTORY"},
	"education":  {"EDUCATION", "ACADEMIC"},
	"skills":     {"SKILLS", "TECHNICAL SKILLS", "COMPETENCIES"},
	"projects":   {"PROJECTS", "PERSONAL PROJECTS"},
}

// splitSections does a best-effort slice of the text into named sections by
// scanning for heading lines. Unmatched text simply stays out of the map;
// downstream scoring treats sections as optional.
func splitSections(text string) map[string]string {
	upper := strings.ToUpper(text)
	type hit struct {
		name  string
		start int
	}
	var hits []hit
	for name, headings := range sectionHeadings {
		best := -1
		for _, h := range headings {
			if i := strings.Index(upper, h); i >= 0 && (best < 0 || i < best) {
				best = i
			}
		}
		if best >= 0 {
			hits = append(hits, hit{name: name, start: best})
		}
	}
	if len(hits) == 0 {
		return nil
	}
	// Order hits by position, then cut the text between consecutive headings.
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			if hits[j].start < hits[i].start {
				hits[i], hits[j] = hits[j], hits[i]
			}
		}
	}
	sections := make(map[string]string, len(hits))
	for i, h := range hits {
		end := len(text)
		if i+1 < len(hits) {
			end = hits[i+1].start
		}
		sections[h.name] = strings.TrimSpace(text[h.start:end])
	}
	return sections
}
