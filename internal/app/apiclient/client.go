/*
Package apiclient wraps outbound calls to the InnoEvent REST API.

Every call either returns the decoded payload or an *errs.CustomError: ErrServerRejected with the
response's "detail" message for non-success statuses, ErrTransport when the API cannot be reached,
ErrUnexpectedResponse when a success body cannot be decoded. Calls are never retried and carry no
client-side timeout; cancellation comes only from the caller's context.
*/
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"innoevent/internal/pkg/errs"
	"innoevent/internal/pkg/logx"
)

// RequestIDHeader is forwarded on every outbound call so API logs can be correlated.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody caps how much of an error response is read while looking for "detail".
const maxErrorBody = 64 << 10

// Client talks to one InnoEvent API base endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New returns a Client for baseURL (e.g. "http://localhost:8000"). A nil httpClient
// uses a dedicated client without timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api/",
		httpClient: httpClient,
		logger:     logx.Component("apiclient"),
	}
}

// do sends one request and decodes a success body into out (when out is non-nil).
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body io.Reader, contentType string, out any) error {
	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return errs.Wrap(errs.ErrUnknown, fmt.Errorf("build %s %s: %w", method, endpoint, err))
	}

	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	requestID := middleware.GetReqID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	httpReq.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("method", method).
			Str("endpoint", endpoint).
			Str("request_id", requestID).
			Msg("API request failed in transport")
		return errs.Wrap(errs.ErrTransport, err)
	}
	defer res.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Str("request_id", requestID).
		Int("status", res.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("API request completed")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return rejection(res)
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errs.Wrap(errs.ErrUnexpectedResponse, fmt.Errorf("%s %s: empty body", method, endpoint))
		}
		return errs.Wrap(errs.ErrUnexpectedResponse, fmt.Errorf("%s %s: %w", method, endpoint, err))
	}

	return nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, query url.Values, in, out any) error {
	if in == nil {
		return c.do(ctx, method, endpoint, query, nil, "", out)
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return errs.Wrap(errs.ErrUnknown, fmt.Errorf("encode %s %s payload: %w", method, endpoint, err))
	}
	return c.do(ctx, method, endpoint, query, bytes.NewReader(payload), "application/json", out)
}

// rejection turns a non-success response into ErrServerRejected.
func rejection(res *http.Response) *errs.CustomError {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))

	statusErr := fmt.Errorf("api responded %s", res.Status)

	if detail := extractDetail(raw); detail != "" {
		return errs.Wrap(errs.ErrServerRejected, statusErr, detail)
	}

	return errs.Wrap(errs.ErrServerRejected, statusErr, "Request failed: "+statusText(res))
}

func statusText(res *http.Response) string {
	if text := http.StatusText(res.StatusCode); text != "" {
		return fmt.Sprintf("%d %s", res.StatusCode, text)
	}
	return res.Status
}

// extractDetail reads the "detail" field of an error body. A string is used as is;
// a validation list (FastAPI style) joins each item's "msg".
func extractDetail(raw []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if m := strings.TrimSpace(item.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}

func idPath(prefix string, id int64) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}
