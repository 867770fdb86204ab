// Package assist talks to an external summarization service that turns a
// free-text prompt (and optional attachment) into a suggested record. The
// service is a collaborator, not part of the core: its replies are untrusted
// until parsed and validated, and every failure surfaces as a recoverable
// CollaboratorError.
// See docs/ARCHITECTURE.md § System Components (Assist).
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/driftwood-labs/shoebox/pkg/types"
)

const maxResponseBytes = 1 << 20

// Client issues summarize requests over HTTP.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

// Request is one summarization request.
type Request struct {
	Prompt     string      `json:"prompt"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

// Attachment is an optional file sent alongside the prompt.
type Attachment struct {
	Name      string `json:"name"`
	MediaType string `json:"media_type"`
	Data      []byte `json:"data"`
}

// reply is the service's wire response.
type reply struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

// Summarize posts the request and returns the service's raw result text.
// The text is expected, but not guaranteed, to be JSON; callers run it
// through ParseTaskDraft before using it.
func (c *Client) Summarize(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", &types.CollaboratorError{Reason: "prompt must not be empty"}
	}
	if c.BaseURL == "" {
		return "", &types.CollaboratorError{Reason: "no assist endpoint configured"}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", &types.CollaboratorError{Reason: "encode request", Err: err}
	}

	requestCtx := ctx
	if c.RequestTimeout > 0 {
		var cancel context.CancelFunc
		requestCtx, cancel = context.WithTimeout(ctx, c.RequestTimeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(requestCtx, http.MethodPost,
		strings.TrimRight(c.BaseURL, "/")+"/summarize", bytes.NewReader(body))
	if err != nil {
		return "", &types.CollaboratorError{Reason: "create request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return "", &types.CollaboratorError{Reason: "request summarization", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &types.CollaboratorError{Reason: "read reply", Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &types.CollaboratorError{
			Reason: fmt.Sprintf("service returned %s", resp.Status),
		}
	}

	var r reply
	if err := json.Unmarshal(raw, &r); err != nil {
		return "", &types.CollaboratorError{Reason: "decode reply envelope", Err: err}
	}
	if r.Error != "" {
		return "", &types.CollaboratorError{Reason: r.Error}
	}
	return r.Result, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
