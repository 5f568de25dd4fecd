package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhouse/clubhouse-api/internal/services"
)

// signatureHeader is where the Direct Debit provider posts its HMAC.
const signatureHeader = "Webhook-Signature"

// WebhookHandler receives provider webhook deliveries.
type WebhookHandler struct {
	common *CommonServices
}

func NewWebhookHandler(common *CommonServices) *WebhookHandler {
	return &WebhookHandler{common: common}
}

// HandleDirectDebitWebhook godoc
// @Summary Ingest a Direct Debit provider webhook
// @Description Verifies the signature, deduplicates events and applies them
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} responses.WebhookResultResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /webhooks/direct-debit [post]
func (h *WebhookHandler) HandleDirectDebitWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.common.HandleError(c, err, "Failed to read request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	// With a queue configured, hand the raw delivery off and acknowledge
	// immediately; the consumer re-verifies the signature before acting.
	if h.common.WebhookQueue != nil {
		messageID, qerr := h.common.WebhookQueue.SendWebhookMessage(c.Request.Context(), body, c.GetHeader(signatureHeader))
		if qerr != nil {
			h.common.HandleError(c, qerr, "Failed to enqueue webhook", http.StatusServiceUnavailable, h.common.GetLogger())
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"message_id": messageID})
		return
	}

	result, err := h.common.WebhookService.ProcessWebhook(c.Request.Context(), body, c.GetHeader(signatureHeader))
	if err != nil {
		if errors.Is(err, services.ErrSignatureInvalid) {
			h.common.HandleError(c, err, "Invalid webhook signature", http.StatusUnauthorized, h.common.GetLogger())
			return
		}
		h.common.HandleError(c, err, "Failed to process webhook", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListWebhookEvents godoc
// @Summary List stored webhook events
// @Description Forensic trail of received provider events
// @Tags webhooks
// @Produce json
// @Param provider query string false "Provider name"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} db.WebhookEvent
// @Router /webhooks/events [get]
func (h *WebhookHandler) ListWebhookEvents(c *gin.Context) {
	provider := c.DefaultQuery("provider", "gocardless")
	limit, offset := parsePagination(c)

	events, err := h.common.WebhookService.ListEvents(c.Request.Context(), provider, limit, offset)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to list webhook events")
		return
	}

	type eventSummary struct {
		ID           string `json:"id"`
		Provider     string `json:"provider"`
		EventID      string `json:"event_id"`
		ResourceType string `json:"resource_type,omitempty"`
		Action       string `json:"action,omitempty"`
		ResourceID   string `json:"resource_id,omitempty"`
		Processed    bool   `json:"processed"`
		Result       string `json:"result,omitempty"`
		CreatedAt    string `json:"created_at"`
	}

	items := make([]eventSummary, 0, len(events))
	for _, e := range events {
		item := eventSummary{
			ID:        e.ID.String(),
			Provider:  e.Provider,
			EventID:   e.EventID,
			Processed: e.Processed,
			CreatedAt: e.CreatedAt.Time.Format("2006-01-02T15:04:05Z07:00"),
		}
		if e.ResourceType.Valid {
			item.ResourceType = e.ResourceType.String
		}
		if e.Action.Valid {
			item.Action = e.Action.String
		}
		if e.ResourceID.Valid {
			item.ResourceID = e.ResourceID.String
		}
		if e.Result.Valid {
			item.Result = e.Result.String
		}
		items = append(items, item)
	}
	c.JSON(http.StatusOK, items)
}
