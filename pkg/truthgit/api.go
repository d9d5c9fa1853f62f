package truthgit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/lumensyntax-org/truthgit-desktop/pkg/logging"
)

// APIClient talks to a remote TruthGit verification service. Transient
// failures are retried with backoff before being reported.
type APIClient struct {
	baseURL func() string
	http    *http.Client
	logger  logging.Logger
}

// NewAPIClient builds a client. baseURL is consulted per request so a
// settings change takes effect immediately.
func NewAPIClient(baseURL func() string) *APIClient {
	retry := retryablehttp.NewClient()
	retry.RetryMax = 3
	retry.RetryWaitMin = 500 * time.Millisecond
	retry.RetryWaitMax = 5 * time.Second
	retry.HTTPClient.Timeout = 30 * time.Second
	retry.Logger = nil

	return &APIClient{
		baseURL: baseURL,
		http:    retry.StandardClient(),
		logger:  logging.NewAPILogger("truthgit"),
	}
}

type verifyRequest struct {
	Claim       string `json:"claim"`
	Domain      string `json:"domain"`
	RiskProfile string `json:"risk_profile"`
}

// Verify posts a claim to the governance endpoint and unwraps the
// response envelope.
func (c *APIClient) Verify(ctx context.Context, claim, domain, riskProfile string) (*GovernanceResult, error) {
	body, err := json.Marshal(verifyRequest{
		Claim:       claim,
		Domain:      domain,
		RiskProfile: riskProfile,
	})
	if err != nil {
		return nil, err
	}

	url := c.baseURL() + "/api/governance/verify"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("governance verify request", "url", url, "domain", domain, "risk", riskProfile)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to TruthGit API: %w", err)
	}
	defer resp.Body.Close()

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if envelope.Data == nil {
		if envelope.Error != "" {
			return nil, fmt.Errorf("%s", envelope.Error)
		}
		return nil, fmt.Errorf("unknown error from TruthGit API")
	}

	return envelope.Data, nil
}
