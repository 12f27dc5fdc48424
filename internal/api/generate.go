package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/genchat/internal/errors"
	"github.com/diogo/genchat/internal/models"
)

// EmptyReplyPlaceholder stands in for a successful response that carried no
// text. It is a normal reply, not an error.
const EmptyReplyPlaceholder = "(no response)"

// GenerateContent sends the full conversation history to the API and returns
// the reply text. The API holds no server-side conversation state, so the
// transcript travels in order on every call.
func (c *Client) GenerateContent(ctx context.Context, history []models.Message) (string, error) {
	if c == nil || c.httpClient == nil {
		return "", apierrors.ErrClientNotInitialized
	}
	if len(history) == 0 {
		return "", apierrors.ErrEmptyHistory
	}

	c.mu.RLock()
	apiKey := c.apiKey
	model := c.model
	baseURL := c.baseURL
	verbose := c.verbose
	c.mu.RUnlock()

	if apiKey == "" {
		return "", apierrors.ErrMissingAPIKey
	}

	endpoint := models.GenerateEndpoint(baseURL, model)

	payload, err := json.Marshal(models.NewGenerateRequest(history))
	if err != nil {
		return "", fmt.Errorf("failed to build payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(payload)))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}
	req.Header.Set("x-goog-api-key", apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", apierrors.NewTimeoutError(endpoint, err)
		}
		return "", apierrors.NewNetworkErrorWithEndpoint("generate content", endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	// Read response body
	body := make([]byte, 0, 65536)
	buf := make([]byte, 4096)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			body = append(body, buf[:n]...)
		}
		if readErr != nil {
			break
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] POST %s -> %d in %s (%d messages, %d bytes)\n",
			endpoint, resp.StatusCode, time.Since(start).Round(time.Millisecond), len(history), len(body))
	}

	if resp.StatusCode != 200 {
		status, message := parseErrorBody(body)
		if message == "" {
			message = "generate content failed"
		}
		// Cap the raw body kept for diagnostics
		errBody := body
		if len(errBody) > 4096 {
			errBody = errBody[:4096]
		}
		return "", apierrors.FromStatus(resp.StatusCode, endpoint, model, status, message, string(errBody))
	}

	return parseResponse(body)
}

// parseErrorBody extracts the status and message from an error response.
// Both are empty when the body is not the documented error shape.
func parseErrorBody(body []byte) (status, message string) {
	if !gjson.ValidBytes(body) {
		return "", ""
	}
	parsed := gjson.ParseBytes(body)
	return parsed.Get(PathErrorStatus).String(), parsed.Get(PathErrorMessage).String()
}

// parseResponse extracts the reply text from a generateContent response
func parseResponse(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", apierrors.NewParseError("response is not valid JSON", "")
	}

	parsed := gjson.ParseBytes(body)

	// Safety blocks surface as promptFeedback with no candidates
	if block := parsed.Get(PathBlockReason); block.Exists() && block.String() != "" {
		return "", apierrors.NewBlockedError(block.String())
	}

	candidates := parsed.Get(PathCandidates)
	if !candidates.Exists() || !candidates.IsArray() || len(candidates.Array()) == 0 {
		return "", apierrors.NewParseError("no candidates in response", PathCandidates)
	}

	if reason := parsed.Get(PathFinishReason); reason.String() == "SAFETY" {
		return "", apierrors.NewBlockedError(reason.String())
	}

	// Concatenate all text parts of the first candidate
	var sb strings.Builder
	parsed.Get(PathCandParts).ForEach(func(_, part gjson.Result) bool {
		sb.WriteString(part.Get("text").String())
		return true
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return EmptyReplyPlaceholder, nil
	}

	return text, nil
}
