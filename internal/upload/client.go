// Package upload talks to the resume analysis backend over HTTP.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/amishk599/resumecheck/internal/model"
)

const (
	uploadPath   = "/api/resumes/upload"
	analysisPath = "/api/resumes/%d/analysis"

	// maxErrorBody caps how much of a failed response is read looking for a message.
	maxErrorBody = 64 << 10
)

// Ensure Client implements both backend interfaces.
var (
	_ model.ResumeUploader  = (*Client)(nil)
	_ model.AnalysisFetcher = (*Client)(nil)
)

// errorBody is the optional JSON body of a failed request.
type errorBody struct {
	Message string `json:"message"`
}

// Client sends resumes to the analysis backend. Each Upload issues exactly
// one request; there is no retry and no timeout beyond the http.Client's.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient creates a client for the backend at baseURL
// (e.g. "http://localhost:8090").
func NewClient(baseURL string, client *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

// Upload posts the resume and optional job description as multipart form
// data and decodes the analysis. Failures reaching or answered by the
// backend are returned as *model.UploadError.
func (c *Client) Upload(ctx context.Context, sub model.Submission) (*model.AnalysisResult, error) {
	body, contentType, err := buildPayload(sub)
	if err != nil {
		return nil, fmt.Errorf("build upload for %s: %w", sub.File.Name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, body)
	if err != nil {
		return nil, fmt.Errorf("build upload for %s: %w", sub.File.Name, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if sub.ID != "" {
		req.Header.Set("X-Request-ID", sub.ID)
	}

	c.logger.Debug("uploading resume",
		"submission_id", sub.ID,
		"file", sub.File.Name,
		"size", sub.File.Size,
		"job_description", sub.JobDescription != "",
	)

	start := time.Now()
	result, err := c.do(req)
	if err == nil && result == nil {
		err = &model.UploadError{StatusCode: http.StatusOK, Err: errors.New("empty response body")}
	}
	if err != nil {
		c.logger.Warn("upload failed",
			"submission_id", sub.ID,
			"file", sub.File.Name,
			"duration", time.Since(start),
			"error", err,
		)
		return nil, err
	}

	c.logger.Info("resume analyzed",
		"submission_id", sub.ID,
		"file", sub.File.Name,
		"score", result.Score,
		"duration", time.Since(start),
	)
	return result, nil
}

// FetchAnalysis loads the stored analysis for resumeID. The backend answers
// an unknown ID with an empty 200, which is reported as a 404.
func (c *Client) FetchAnalysis(ctx context.Context, resumeID int64) (*model.AnalysisResult, error) {
	url := c.baseURL + fmt.Sprintf(analysisPath, resumeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch analysis %d: %w", resumeID, err)
	}
	req.Header.Set("Accept", "application/json")

	result, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, &model.UploadError{
			StatusCode: http.StatusNotFound,
			Message:    fmt.Sprintf("No analysis found for resume %d", resumeID),
		}
	}
	return result, nil
}

// do sends req and decodes a 2xx JSON analysis. A 2xx with an empty body
// returns (nil, nil).
func (c *Client) do(req *http.Request) (*model.AnalysisResult, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &model.UploadError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.UploadError{StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var result model.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &model.UploadError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode analysis: %w", err)}
	}
	return &result, nil
}

// statusError builds an UploadError for a non-2xx response, picking up the
// "message" field when the body is JSON that carries one.
func statusError(resp *http.Response) *model.UploadError {
	uerr := &model.UploadError{
		StatusCode: resp.StatusCode,
		Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return uerr
	}

	var eb errorBody
	if json.Unmarshal(data, &eb) == nil {
		uerr.Message = strings.TrimSpace(eb.Message)
	}
	return uerr
}
