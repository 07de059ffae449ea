package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/resumeforge/resumeforge/api/http/presenter"
	"github.com/resumeforge/resumeforge/pkg/analysis"
)

// AnalyzeHandler serves the resume analysis endpoint.
type AnalyzeHandler struct {
	svc analysis.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewAnalyzeHandler(svc analysis.UseCase) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc, maxBytes: 15 << 20} // 15MB
}

type atsAnalysisResponse struct {
	Score           int      `json:"score"`
	MatchPercentage int      `json:"match_percentage"`
	MissingKeywords []string `json:"missing_keywords"`
	MatchedKeywords []string `json:"matched_keywords"`
}

type resumeFeedbackResponse struct {
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	Suggestions         []string `json:"suggestions"`
}

type analyzeResponse struct {
	ATSAnalysis     atsAnalysisResponse    `json:"atsAnalysis"`
	ResumeFeedback  resumeFeedbackResponse `json:"resumeFeedback"`
	PlaceholderUsed bool                   `json:"placeholderUsed,omitempty"`
}

// Analyze accepts a multipart form with a resume file and a job
// description, runs the analysis pipeline and returns the merged report.
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "Resume file and job description are required")
	}
	jobDescription := c.FormValue("jobDescription")
	if jobDescription == "" {
		return presenter.Error(c, http.StatusBadRequest, "Resume file and job description are required")
	}

	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.svc.Analyze(c.Context(), analysis.Request{
		Filename:       fh.Filename,
		File:           data,
		JobDescription: jobDescription,
	})
	if err != nil {
		var aerr *analysis.Error
		if errors.As(err, &aerr) {
			return presenter.Error(c, aerr.HTTPStatus(), aerr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to analyze resume")
	}

	return presenter.JSON(c, http.StatusOK, analyzeResponse{
		ATSAnalysis: atsAnalysisResponse{
			Score:           result.ATSScore,
			MatchPercentage: result.MatchPercentage,
			MissingKeywords: result.MissingKeywords,
			MatchedKeywords: result.MatchedKeywords,
		},
		ResumeFeedback: resumeFeedbackResponse{
			Strengths:           result.Strengths,
			AreasForImprovement: result.AreasForImprovement,
			Suggestions:         result.Suggestions,
		},
		PlaceholderUsed: result.PlaceholderUsed,
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
