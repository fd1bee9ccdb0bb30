package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"silent-auction-client/internal/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client issues typed HTTP requests against the marketplace backend.
// It never retries and sets no timeout of its own unless one is
// configured; callers abandon in-flight requests through the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

type ClientParams struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewClient creates a new backend client
func NewClient(params ClientParams) *Client {
	return &Client{
		baseURL: strings.TrimRight(params.Config.API.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: params.Config.API.Timeout,
		},
		logger: params.Logger.With().Str("component", "rest_client").Logger(),
	}
}

// TransportError reports a failed exchange with the backend. Message
// holds the backend's error message verbatim when one was returned;
// StatusCode is zero when the request never produced a response.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// doJSON issues a request with an optional JSON body and decodes a
// successful response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// doMultipart issues a POST whose body is a multipart form written by
// build. Used for listing uploads, which carry an image file.
func (c *Client) doMultipart(ctx context.Context, path string, build func(*multipart.Writer) error, out interface{}) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	if err := build(form); err != nil {
		form.Close()
		return fmt.Errorf("failed to write multipart form: %w", err)
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	logger := c.logger.With().
		Str("request_id", uuid.New().String()).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Logger()
	logger.Debug().Msg("Issuing request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Msg("Request failed before a response arrived")
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error().Err(err).Int("status", resp.StatusCode).Msg("Failed to read response body")
		return &TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn().Int("status", resp.StatusCode).Msg("Backend returned an error status")
		return &TransportError{StatusCode: resp.StatusCode, Message: backendMessage(payload)}
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			logger.Error().Err(err).Msg("Failed to decode response body")
			return &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
	}

	logger.Debug().Int("status", resp.StatusCode).Msg("Request completed")
	return nil
}

// backendMessage extracts the human-readable message error responses
// carry. An empty string means the body held no usable message.
func backendMessage(payload []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.Message
}

// pickID prefers the Mongo-style _id over the plain id alias some
// responses use instead.
func pickID(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// parseTimestamp decodes the timestamp formats the backend emits.
// Listing deadlines arrive as raw form text, so a zero time is
// returned rather than an error when none of the layouts match.
func parseTimestamp(value string) time.Time {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}
