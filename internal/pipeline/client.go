// Package pipeline implements the HTTP client for the redaction pipeline
// backend. The backend is reached through exactly two endpoints: one serving
// the whole report as a JSON array, one accepting a multipart document
// upload. Everything else about the pipeline (OCR, detection, redaction,
// storage) is out of reach by design.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/example/redactview/internal/config"
	"github.com/example/redactview/internal/constants"
	"github.com/example/redactview/internal/models"
	"github.com/example/redactview/internal/utils"
)

// Client talks to the pipeline backend. The underlying http.Client carries no
// timeout: processing a large document can take minutes and the contract
// defines no retry or deadline, so a slow call is simply awaited.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a pipeline client from configuration.
func NewClient(cfg *config.PipelineSettings) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{},
	}
}

// BaseURL returns the backend base URL, used by the asset proxy.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchReport retrieves the full report. The request bypasses any cache layer
// so every load sees fresh data. A non-success status is treated identically
// to a transport failure: the status body is not inspected further.
//
// The decoded payload is validated against the expected entry shape at this
// boundary; a payload that parses as JSON but violates the schema fails into
// the same ParseFailure path as malformed JSON.
func (c *Client) FetchReport(ctx context.Context) ([]models.ReportEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+constants.ReportEndpoint, nil)
	if err != nil {
		return nil, utils.NewNetworkError(0, err.Error())
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, utils.NewNetworkError(0, err.Error())
	}
	defer closeBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, utils.NewNetworkError(resp.StatusCode, fmt.Sprintf("report fetch returned status %d", resp.StatusCode))
	}

	var entries []models.ReportEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, utils.NewParseError(err)
	}

	for i := range entries {
		if err := utils.ValidateStruct(&entries[i]); err != nil {
			return nil, err
		}
		// A null detections field decodes to nil; downstream code treats the
		// entry as a page with zero detections either way.
		if entries[i].Detections == nil {
			entries[i].Detections = []models.Detection{}
		}
	}

	return entries, nil
}

// uploadResponse is the success body of the upload endpoint.
type uploadResponse struct {
	Status string `json:"status"`
	Pages  int    `json:"pages"`
}

// uploadErrorResponse is the error body of the upload endpoint. The error
// field is optional; callers fall back to generic wording when it is absent.
type uploadErrorResponse struct {
	Error string `json:"error"`
}

// Upload posts one document to the pipeline for processing and returns the
// number of pages the backend processed.
//
// On a non-success status the error body is parsed for a human-readable
// message; if one is present the returned error carries it, otherwise the
// error carries no message and the caller uses its generic text. A success
// response whose body cannot be parsed is reported the same way as a
// transport failure.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (int, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile(constants.UploadFieldName, filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, content); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+constants.UploadEndpoint, pr)
	if err != nil {
		return 0, utils.NewNetworkError(0, err.Error())
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, utils.NewNetworkError(0, err.Error())
	}
	defer closeBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody uploadErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			return 0, utils.NewUploadError(resp.StatusCode, errBody.Error)
		}
		return 0, utils.NewNetworkError(resp.StatusCode, fmt.Sprintf("upload returned status %d", resp.StatusCode))
	}

	var body uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, utils.NewNetworkError(resp.StatusCode, fmt.Sprintf("unreadable upload response: %v", err))
	}

	return body.Pages, nil
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close response body")
	}
}
