package facematch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shairahamancsc/labourpro-backend-go/internal/config"
)

// Candidate pairs a labourer id with their enrolled reference image.
type Candidate struct {
	ID               string `json:"id"`
	ReferenceDataURI string `json:"reference_data_uri"`
}

// Result is the provider's best match for a probe image. A nil Result from
// Match means no candidate scored above the configured confidence floor.
type Result struct {
	MatchID    string  `json:"match_id"`
	Confidence float64 `json:"confidence"`
}

// Service calls the hosted face-similarity model. The provider does all the
// image work; this client only ships images and reads the verdict back.
type Service interface {
	Match(ctx context.Context, probeDataURI string, candidates []Candidate) (*Result, error)
}

type client struct {
	endpoint      string
	apiKey        string
	model         string
	minConfidence float64
	httpClient    *http.Client
}

func NewClient(cfg config.FaceMatchConfig) Service {
	return &client{
		endpoint:      cfg.Endpoint,
		apiKey:        cfg.APIKey,
		model:         cfg.Model,
		minConfidence: cfg.MinConfidence,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		},
	}
}

type matchRequest struct {
	Model      string      `json:"model"`
	ProbeImage string      `json:"probe_data_uri"`
	Candidates []Candidate `json:"candidates"`
}

type matchResponse struct {
	Match      *Result `json:"match"`
	NoMatch    bool    `json:"no_match"`
	FailReason string  `json:"fail_reason,omitempty"`
}

func (c *client) Match(ctx context.Context, probeDataURI string, candidates []Candidate) (*Result, error) {
	body, err := json.Marshal(matchRequest{
		Model:      c.model,
		ProbeImage: probeDataURI,
		Candidates: candidates,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode match request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build match request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("face match request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("face match provider returned status %d", resp.StatusCode)
	}

	var parsed matchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode match response: %w", err)
	}

	if parsed.NoMatch || parsed.Match == nil {
		return nil, nil
	}
	if parsed.Match.Confidence < c.minConfidence {
		return nil, nil
	}

	return parsed.Match, nil
}
