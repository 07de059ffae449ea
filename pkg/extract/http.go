package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// HTTPExtractor calls the external PDF parser service: POST multipart with
// field "pdf_file", reply {"text": ..., "sections": {...}}.
type HTTPExtractor struct {
	url    string
	httpDo *http.Client
}

func NewHTTPExtractor(url string, timeout time.Duration) *HTTPExtractor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPExtractor{
		url:    url,
		httpDo: &http.Client{Timeout: timeout},
	}
}

func (e *HTTPExtractor) Extract(ctx context.Context, filename string, data []byte) (ExtractedResume, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("pdf_file", filename)
	if err != nil {
		return ExtractedResume{}, err
	}
	if _, err := part.Write(data); err != nil {
		return ExtractedResume{}, err
	}
	if err := mw.Close(); err != nil {
		return ExtractedResume{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, &body)
	if err != nil {
		return ExtractedResume{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := e.httpDo.Do(req)
	if err != nil {
		return ExtractedResume{}, fmt.Errorf("parser service unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return ExtractedResume{}, fmt.Errorf("parser service returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	var out ExtractedResume
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ExtractedResume{}, fmt.Errorf("decode parser response: %w", err)
	}
	return out, nil
}
