// Package analysis implements the resume analysis pipeline: extraction,
// parallel ATS scoring and feedback, and merging into one report.
package analysis

import (
	"context"
	"fmt"
	"net/http"
)

// Request carries one analysis submission.
type Request struct {
	Filename       string
	File           []byte
	JobDescription string
}

// Document is the extracted resume handed to the scoring collaborator.
type Document struct {
	TextContent string            `json:"text_content"`
	Sections    map[string]string `json:"sections"`
}

// ATSReport is the scoring collaborator's match report.
type ATSReport struct {
	ATSScore       int `json:"ats_score"`
	ScoreBreakdown struct {
		KeywordMatch    int `json:"keyword_match"`
		ExperienceMatch int `json:"experience_match"`
		SkillMatch      int `json:"skill_match"`
		EducationMatch  int `json:"education_match"`
	} `json:"score_breakdown"`
	MissingKeywords []string `json:"missing_keywords"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// FeedbackReport is the qualitative feedback collaborator's report.
type FeedbackReport struct {
	Overview             string              `json:"overview"`
	SectionAnalysis      map[string][]string `json:"section_analysis"`
	PriorityImprovements []string            `json:"priority_improvements"`
	ScoreBreakdown       map[string]int      `json:"score_breakdown"`
}

// Scorer is the port to the LLM-backed scoring/feedback collaborator.
type Scorer interface {
	ATSScore(ctx context.Context, doc Document, jobDescription string) (ATSReport, error)
	Feedback(ctx context.Context, doc Document) (FeedbackReport, error)
}

// Result is the merged analysis returned to the caller. Every field is
// always populated (documented defaults fill upstream gaps), so callers can
// render a complete report unconditionally.
type Result struct {
	ATSScore            int      `json:"atsScore"`
	MatchPercentage     int      `json:"matchPercentage"`
	MissingKeywords     []string `json:"missingKeywords"`
	MatchedKeywords     []string `json:"matchedKeywords"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	Suggestions         []string `json:"suggestions"`
	// PlaceholderUsed flags that extraction produced implausibly little
	// text and the canned demo resume was scored instead.
	PlaceholderUsed bool `json:"placeholderUsed"`
}

// Kind classifies pipeline failures.
type Kind string

const (
	KindMissingInput     Kind = "missing_input"
	KindExtractionFailed Kind = "extraction_failed"
	KindScoringFailed    Kind = "scoring_failed"
	KindUnknown          Kind = "unknown"
)

// Error is the typed failure every pipeline path returns. Nothing in the
// pipeline is allowed to panic or crash the process.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the failure kind to the API status code. Everything that
// happens while processing the uploaded file, extraction and scoring
// included, reports as 400; only unexpected failures are 500.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindMissingInput, KindExtractionFailed, KindScoringFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
