// Package risk submits signup assessment events to the external fraud-scoring
// service. Only the score field and the call's success are consumed here; the
// scoring model and the rest of the payload are opaque.
package risk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gatekeep/internal/registration"
)

// Decision is the untrusted result of one assessment call. Score is a pointer
// because a syntactically successful response may omit it; callers must treat
// a missing score as the service being unavailable, never as zero risk.
type Decision struct {
	Score         *float64       `json:"score"`
	ResultDetails map[string]any `json:"result_details"`
}

// Client submits signup events for scoring.
type Client interface {
	SubmitSignupEvent(ctx context.Context, event registration.AssessmentEvent) (*Decision, error)
}

// HTTPClient posts assessment events as JSON to the risk service endpoint.
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

func NewHTTPClient(endpoint string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SubmitSignupEvent(ctx context.Context, event registration.AssessmentEvent) (*Decision, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal assessment event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build assessment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Assessment-ID", event.AssessmentID.String())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit assessment event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused; the body is untrusted and
		// not reported back to callers.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("assessment service returned status %d", resp.StatusCode)
	}

	var decision Decision
	if err := json.NewDecoder(resp.Body).Decode(&decision); err != nil {
		return nil, fmt.Errorf("decode assessment decision: %w", err)
	}

	return &decision, nil
}
