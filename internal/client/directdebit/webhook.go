package directdebit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
)

// VerifyWebhookSignature checks the hex HMAC-SHA256 signature the provider
// sends in its Webhook-Signature header against the raw body. Constant-time
// compare; an empty header never verifies.
func (c *Client) VerifyWebhookSignature(body []byte, signatureHeader string) bool {
	if signatureHeader == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signatureHeader))
}

// rawEvent is the provider's wire shape for one event in a webhook batch.
type rawEvent struct {
	ID           string            `json:"id"`
	ResourceType string            `json:"resource_type"`
	Action       string            `json:"action"`
	Details      map[string]string `json:"details"`
	Links        struct {
		Mandate string `json:"mandate"`
		Payment string `json:"payment"`
		Refund  string `json:"refund"`
	} `json:"links"`
}

// ParseWebhookEvents normalizes a raw webhook body into events. The provider
// batches multiple events per delivery; each carries its own id.
func (c *Client) ParseWebhookEvents(body []byte) ([]Event, error) {
	var envelope struct {
		Events []rawEvent `json:"events"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "directdebit: parse webhook body")
	}

	events := make([]Event, 0, len(envelope.Events))
	for _, raw := range envelope.Events {
		event := Event{
			ID:           raw.ID,
			ResourceType: raw.ResourceType,
			Action:       raw.Action,
			Details:      raw.Details,
		}
		switch raw.ResourceType {
		case ResourceMandates:
			event.ResourceID = raw.Links.Mandate
		case ResourcePayments:
			event.ResourceID = raw.Links.Payment
		case ResourceRefunds:
			event.ResourceID = raw.Links.Refund
		}
		events = append(events, event)
	}
	return events, nil
}
