package subscription

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ApprovalConfig holds configuration for the external campaign approval
// workflow. The endpoint and shared secret are resolved at startup and
// injected; nothing reads them ambiently.
type ApprovalConfig struct {
	URL       string        `env:"APPROVAL_URL,required"`
	AppSecret string        `env:"APP_SECRET,required"`
	Timeout   time.Duration `env:"APPROVAL_TIMEOUT" envDefault:"30s"`
}

// SubmissionClient posts a campaign for external approval.
type SubmissionClient interface {
	Submit(ctx context.Context, campaign *Campaign) error
}

// ApprovalClient is the HTTP implementation of SubmissionClient. The call is
// synchronous and blocks the owning transition, so the client always runs
// with a request timeout.
type ApprovalClient struct {
	endpoint string
	secret   string
	client   *http.Client
}

// NewApprovalClient creates an approval client from config.
func NewApprovalClient(cfg ApprovalConfig) *ApprovalClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ApprovalClient{
		endpoint: cfg.URL,
		secret:   cfg.AppSecret,
		client:   &http.Client{Timeout: timeout},
	}
}

// NewApprovalClientWithHTTPClient creates an approval client with a custom
// HTTP client for tests or custom transports.
func NewApprovalClientWithHTTPClient(cfg ApprovalConfig, client *http.Client) *ApprovalClient {
	c := NewApprovalClient(cfg)
	if client != nil {
		c.client = client
	}
	return c
}

type submissionPayload struct {
	CampaignCode string `json:"campaignCode"`
	CustomerID   string `json:"customerId"`
}

// Submit posts the campaign to the approval endpoint. Any 2xx/3xx response is
// treated as acceptance; error statuses are returned to the caller, which
// decides whether to mark the submission as failed.
func (c *ApprovalClient) Submit(ctx context.Context, campaign *Campaign) error {
	if campaign == nil {
		return ErrMissingCampaign
	}

	body, err := json.Marshal(submissionPayload{
		CampaignCode: campaign.Code,
		CustomerID:   campaign.CustomerID,
	})
	if err != nil {
		return errors.Join(ErrSubmissionFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrSubmissionFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("app-secret", c.secret)

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Join(ErrSubmissionFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: approval endpoint returned status %d", ErrSubmissionFailed, resp.StatusCode)
	}
	return nil
}
