package directdebit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Client talks to a GoCardless-style Direct-Debit API. One instance is
// constructed per process configuration and injected into the components that
// need it; there is no shared global.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	accessToken   string
	webhookSecret string
	logger        *zap.Logger
}

// Config holds the provider connection settings.
type Config struct {
	BaseURL       string
	AccessToken   string
	WebhookSecret string
}

// NewClient creates a provider client. The webhook secret is required because
// every inbound notification must be signature-checked before any side effect.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("directdebit: base URL is required")
	}
	if cfg.AccessToken == "" {
		return nil, errors.New("directdebit: access token is required")
	}
	if cfg.WebhookSecret == "" {
		return nil, errors.New("directdebit: webhook secret is required")
	}
	return &Client{
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		baseURL:       cfg.BaseURL,
		accessToken:   cfg.AccessToken,
		webhookSecret: cfg.WebhookSecret,
		logger:        logger,
	}, nil
}

// ProviderName identifies the provider.
func (c *Client) ProviderName() string {
	return "gocardless"
}

// APIError is a non-2xx response from the provider, kept verbose enough to
// support manual intervention.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("directdebit: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (c *Client) doJSON(ctx context.Context, method, path string, reqBody, respBody interface{}) error {
	var bodyReader io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Body:       string(data),
		}
	}

	if respBody != nil {
		if err := json.Unmarshal(data, respBody); err != nil {
			return errors.Wrap(err, "decode response body")
		}
	}
	return nil
}

type customerEnvelope struct {
	Customer struct {
		ID         string `json:"id"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	} `json:"customer"`
}

// CreateCustomer creates a remote customer and returns its provider id.
func (c *Client) CreateCustomer(ctx context.Context, data CustomerData) (*CreateCustomerResult, error) {
	var resp customerEnvelope
	err := c.doJSON(ctx, http.MethodPost, "/customers", map[string]CustomerData{"customer": data}, &resp)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Created provider customer",
		zap.String("provider_customer_id", resp.Customer.ID))
	return &CreateCustomerResult{ProviderCustomerID: resp.Customer.ID}, nil
}

// UpdateCustomer updates the contact fields of a remote customer.
func (c *Client) UpdateCustomer(ctx context.Context, providerCustomerID string, data CustomerData) error {
	return c.doJSON(ctx, http.MethodPut, "/customers/"+providerCustomerID, map[string]CustomerData{"customer": data}, nil)
}

type setupFlowEnvelope struct {
	RedirectFlow struct {
		ID          string `json:"id"`
		RedirectURL string `json:"redirect_url"`
		ExpiresAt   string `json:"expires_at"`
	} `json:"redirect_flow"`
}

// CreateMandateSetupFlow starts a hosted mandate authorization flow for the
// given remote customer.
func (c *Client) CreateMandateSetupFlow(ctx context.Context, providerCustomerID string, redirect RedirectURLs, opts SetupFlowOptions) (*SetupFlow, error) {
	payload := map[string]interface{}{
		"redirect_flow": map[string]interface{}{
			"scheme":               opts.Scheme,
			"description":          opts.Description,
			"success_redirect_url": redirect.SuccessURL,
			"cancel_redirect_url":  redirect.CancelURL,
			"links": map[string]string{
				"customer": providerCustomerID,
			},
		},
	}

	var resp setupFlowEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/redirect_flows", payload, &resp); err != nil {
		return nil, err
	}

	expiresAt, err := time.Parse(time.RFC3339, resp.RedirectFlow.ExpiresAt)
	if err != nil {
		// Missing or malformed expiry from the provider; fall back to the
		// documented 30 minute flow lifetime.
		expiresAt = time.Now().Add(30 * time.Minute)
	}

	return &SetupFlow{
		FlowID:           resp.RedirectFlow.ID,
		AuthorisationURL: resp.RedirectFlow.RedirectURL,
		ExpiresAt:        expiresAt,
	}, nil
}

type mandateEnvelope struct {
	Mandate struct {
		ID                     string `json:"id"`
		Status                 string `json:"status"`
		Scheme                 string `json:"scheme"`
		Reference              string `json:"reference"`
		NextPossibleChargeDate string `json:"next_possible_charge_date"`
	} `json:"mandate"`
}

func (m *mandateEnvelope) details() *MandateDetails {
	d := &MandateDetails{
		ProviderMandateID: m.Mandate.ID,
		Status:            m.Mandate.Status,
		Scheme:            m.Mandate.Scheme,
		Reference:         m.Mandate.Reference,
	}
	if m.Mandate.NextPossibleChargeDate != "" {
		if t, err := time.Parse(dateLayout, m.Mandate.NextPossibleChargeDate); err == nil {
			d.NextPossibleChargeDate = t
		}
	}
	return d
}

// CompleteMandateSetup exchanges a finished hosted flow for the mandate it
// authorized. This is the only call that yields the real provider mandate id.
func (c *Client) CompleteMandateSetup(ctx context.Context, flowID string) (*MandateDetails, error) {
	var resp struct {
		RedirectFlow struct {
			Links struct {
				Mandate string `json:"mandate"`
			} `json:"links"`
		} `json:"redirect_flow"`
	}
	err := c.doJSON(ctx, http.MethodPost, "/redirect_flows/"+flowID+"/actions/complete", map[string]interface{}{}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.RedirectFlow.Links.Mandate == "" {
		return nil, errors.New("directdebit: completed flow has no mandate link")
	}
	return c.GetMandate(ctx, resp.RedirectFlow.Links.Mandate)
}

// CancelMandate cancels a mandate remotely.
func (c *Client) CancelMandate(ctx context.Context, providerMandateID string) error {
	return c.doJSON(ctx, http.MethodPost, "/mandates/"+providerMandateID+"/actions/cancel", map[string]interface{}{}, nil)
}

// GetMandate fetches the provider's current view of a mandate.
func (c *Client) GetMandate(ctx context.Context, providerMandateID string) (*MandateDetails, error) {
	var resp mandateEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/mandates/"+providerMandateID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.details(), nil
}

var _ API = (*Client)(nil)
