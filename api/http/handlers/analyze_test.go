package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeforge/resumeforge/pkg/analysis"
)

type fakeAnalysis struct {
	result analysis.Result
	err    error
	last   analysis.Request
}

func (f *fakeAnalysis) Analyze(ctx context.Context, req analysis.Request) (analysis.Result, error) {
	f.last = req
	return f.result, f.err
}

func analyzeApp(svc analysis.UseCase) *fiber.App {
	app := fiber.New()
	app.Post("/analyze-resume", NewAnalyzeHandler(svc).Analyze)
	return app
}

func multipartBody(t *testing.T, filename string, file []byte, jobDescription string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := w.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	if jobDescription != "" {
		require.NoError(t, w.WriteField("jobDescription", jobDescription))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestAnalyzeEndpointSuccess(t *testing.T) {
	svc := &fakeAnalysis{result: analysis.Result{
		ATSScore:            82,
		MatchPercentage:     77,
		MissingKeywords:     []string{"Docker"},
		MatchedKeywords:     []string{"Leadership"},
		Strengths:           []string{"Strong ownership"},
		AreasForImprovement: []string{"Add metrics"},
		Suggestions:         []string{"Mention Docker experience"},
	}}
	app := analyzeApp(svc)

	body, contentType := multipartBody(t, "cv.pdf", []byte("%PDF-1.4 fake"), "Backend engineer")
	req := httptest.NewRequest(http.MethodPost, "/analyze-resume", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var got struct {
		ATSAnalysis struct {
			Score           int      `json:"score"`
			MatchPercentage int      `json:"match_percentage"`
			MissingKeywords []string `json:"missing_keywords"`
			MatchedKeywords []string `json:"matched_keywords"`
		} `json:"atsAnalysis"`
		ResumeFeedback struct {
			Strengths           []string `json:"strengths"`
			AreasForImprovement []string `json:"areas_for_improvement"`
			Suggestions         []string `json:"suggestions"`
		} `json:"resumeFeedback"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 82, got.ATSAnalysis.Score)
	assert.Equal(t, 77, got.ATSAnalysis.MatchPercentage)
	assert.Equal(t, []string{"Docker"}, got.ATSAnalysis.MissingKeywords)
	assert.Equal(t, []string{"Strong ownership"}, got.ResumeFeedback.Strengths)
	assert.Equal(t, []string{"Add metrics"}, got.ResumeFeedback.AreasForImprovement)

	assert.Equal(t, "cv.pdf", svc.last.Filename)
	assert.Equal(t, "Backend engineer", svc.last.JobDescription)
	assert.NotEmpty(t, svc.last.File)
}

func TestAnalyzeEndpointMissingParts(t *testing.T) {
	tests := []struct {
		name           string
		filename       string
		jobDescription string
	}{
		{name: "no file", jobDescription: "Backend engineer"},
		{name: "no job description", filename: "cv.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := analyzeApp(&fakeAnalysis{})
			body, contentType := multipartBody(t, tt.filename, []byte("x"), tt.jobDescription)
			req := httptest.NewRequest(http.MethodPost, "/analyze-resume", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			var errBody struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(raw, &errBody))
			assert.Equal(t, "Resume file and job description are required", errBody.Error)
		})
	}
}

func TestAnalyzeEndpointMapsPipelineErrors(t *testing.T) {
	tests := []struct {
		name       string
		kind       analysis.Kind
		wantStatus int
	}{
		{name: "extraction failure is a processing error", kind: analysis.KindExtractionFailed, wantStatus: http.StatusBadRequest},
		{name: "scoring failure is a processing error", kind: analysis.KindScoringFailed, wantStatus: http.StatusBadRequest},
		{name: "unknown failure is ours", kind: analysis.KindUnknown, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAnalysis{err: &analysis.Error{Kind: tt.kind}}
			app := analyzeApp(svc)

			body, contentType := multipartBody(t, "cv.pdf", []byte("%PDF"), "Backend engineer")
			req := httptest.NewRequest(http.MethodPost, "/analyze-resume", body)
			req.Header.Set("Content-Type", contentType)

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
