package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/types/api/params"
	"github.com/clubhouse/clubhouse-api/internal/types/api/requests"
	"github.com/clubhouse/clubhouse-api/internal/types/api/responses"
	"github.com/clubhouse/clubhouse-api/internal/types/business"
)

// SubscriptionHandler exposes the subscription lifecycle over HTTP.
type SubscriptionHandler struct {
	common *CommonServices
}

func NewSubscriptionHandler(common *CommonServices) *SubscriptionHandler {
	return &SubscriptionHandler{common: common}
}

// actorFromContext resolves the acting user from the X-User-ID header set by
// the auth layer upstream. Absent header means a system-driven call.
func actorFromContext(c *gin.Context) params.Actor {
	raw := c.GetHeader("X-User-ID")
	if raw == "" {
		return params.SystemActor
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return params.SystemActor
	}
	return params.Actor{Type: db.ActorTypeUser, ID: id}
}

// CreateSubscription godoc
// @Summary Create a subscription
// @Description Registers a membership subscription for a child in a club
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body requests.CreateSubscriptionRequest true "Subscription details"
// @Success 201 {object} responses.SubscriptionResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /subscriptions [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req requests.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	clubID, _ := uuid.Parse(req.ClubID)
	parentID, _ := uuid.Parse(req.ParentUserID)
	childID, _ := uuid.Parse(req.ChildUserID)
	tierID, _ := uuid.Parse(req.TierID)

	var subscription *db.Subscription
	err := h.common.WithTransaction(c.Request.Context(), func(tx pgx.Tx) error {
		var txErr error
		subscription, txErr = h.common.SubscriptionService.WithTransaction(tx).CreateSubscription(c.Request.Context(), params.CreateSubscriptionParams{
			ClubID:            clubID,
			ParentUserID:      parentID,
			ChildUserID:       childID,
			TierID:            tierID,
			BillingFrequency:  db.BillingFrequency(req.BillingFrequency),
			BillingDayOfMonth: req.BillingDayOfMonth,
			PaymentMandateID:  req.PaymentMandateID,
			Actor:             actorFromContext(c),
		})
		return txErr
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to create subscription")
		return
	}

	c.JSON(http.StatusCreated, toSubscriptionResponse(*subscription))
}

// GetSubscription godoc
// @Summary Get a subscription by ID
// @Tags subscriptions
// @Produce json
// @Param subscription_id path string true "Subscription ID"
// @Success 200 {object} responses.SubscriptionResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /subscriptions/{subscription_id} [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	id, ok := h.common.parsePathUUID(c, "subscription_id")
	if !ok {
		return
	}

	subscription, err := h.common.SubscriptionService.GetSubscription(c.Request.Context(), id)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to get subscription")
		return
	}
	c.JSON(http.StatusOK, toSubscriptionResponse(*subscription))
}

// ListClubSubscriptions godoc
// @Summary List a club's subscriptions
// @Tags subscriptions
// @Produce json
// @Param club_id path string true "Club ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} responses.ListSubscriptionsResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /clubs/{club_id}/subscriptions [get]
func (h *SubscriptionHandler) ListClubSubscriptions(c *gin.Context) {
	clubID, ok := h.common.parsePathUUID(c, "club_id")
	if !ok {
		return
	}
	limit, offset := parsePagination(c)

	subs, total, err := h.common.SubscriptionService.ListSubscriptionsByClub(c.Request.Context(), clubID, limit, offset)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to list subscriptions")
		return
	}

	items := make([]responses.SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		items = append(items, toSubscriptionResponse(s))
	}
	c.JSON(http.StatusOK, responses.ListSubscriptionsResponse{
		Subscriptions: items,
		Total:         total,
		Limit:         limit,
		Offset:        offset,
	})
}

// ListMemberSubscriptions godoc
// @Summary List a member's subscriptions
// @Tags subscriptions
// @Produce json
// @Param child_user_id path string true "Child user ID"
// @Success 200 {array} responses.SubscriptionResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /members/{child_user_id}/subscriptions [get]
func (h *SubscriptionHandler) ListMemberSubscriptions(c *gin.Context) {
	childID, ok := h.common.parsePathUUID(c, "child_user_id")
	if !ok {
		return
	}

	subs, err := h.common.SubscriptionService.ListSubscriptionsByMember(c.Request.Context(), childID)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to list member subscriptions")
		return
	}

	items := make([]responses.SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		items = append(items, toSubscriptionResponse(s))
	}
	c.JSON(http.StatusOK, items)
}

// ActivateSubscription godoc
// @Summary Activate a pending subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription_id path string true "Subscription ID"
// @Param request body requests.ActivateSubscriptionRequest true "Mandate reference"
// @Success 200 {object} responses.SubscriptionResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /subscriptions/{subscription_id}/activate [post]
func (h *SubscriptionHandler) ActivateSubscription(c *gin.Context) {
	id, ok := h.common.parsePathUUID(c, "subscription_id")
	if !ok {
		return
	}
	var req requests.ActivateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	var subscription *db.Subscription
	err := h.common.WithTransaction(c.Request.Context(), func(tx pgx.Tx) error {
		var txErr error
		subscription, txErr = h.common.SubscriptionService.WithTransaction(tx).ActivateSubscription(c.Request.Context(), id, req.PaymentMandateID, actorFromContext(c))
		return txErr
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to activate subscription")
		return
	}
	c.JSON(http.StatusOK, toSubscriptionResponse(*subscription))
}

// PauseSubscription godoc
// @Summary Pause an active subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription_id path string true "Subscription ID"
// @Param request body requests.PauseSubscriptionRequest true "Pause options"
// @Success 200 {object} responses.SubscriptionResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /subscriptions/{subscription_id}/pause [post]
func (h *SubscriptionHandler) PauseSubscription(c *gin.Context) {
	id, ok := h.common.parsePathUUID(c, "subscription_id")
	if !ok {
		return
	}
	var req requests.PauseSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	var subscription *db.Subscription
	err := h.common.WithTransaction(c.Request.Context(), func(tx pgx.Tx) error {
		var txErr error
		subscription, txErr = h.common.SubscriptionService.WithTransaction(tx).PauseSubscription(c.Request.Context(), params.PauseSubscriptionParams{
			SubscriptionID: id,
			ResumeDate:     req.ResumeDate,
			Actor:          actorFromContext(c),
		})
		return txErr
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to pause subscription")
		return
	}
	c.JSON(http.StatusOK, toSubscriptionResponse(*subscription))
}

// ResumeSubscription godoc
// @Summary Resume a paused subscription
// @Tags subscriptions
// @Produce json
// @Param subscription_id path string true "Subscription ID"
// @Success 200 {object} responses.SubscriptionResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /subscriptions/{subscription_id}/resume [post]
func (h *SubscriptionHandler) ResumeSubscription(c *gin.Context) {
	id, ok := h.common.parsePathUUID(c, "subscription_id")
	if !ok {
		return
	}

	var subscription *db.Subscription
	err := h.common.WithTransaction(c.Request.Context(), func(tx pgx.Tx) error {
		var txErr error
		subscription, txErr = h.common.SubscriptionService.WithTransaction(tx).ResumeSubscription(c.Request.Context(), id, actorFromContext(c))
		return txErr
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to resume subscription")
		return
	}
	c.JSON(http.StatusOK, toSubscriptionResponse(*subscription))
}

// CancelSubscription godoc
// @Summary Cancel a subscription
// @Description Cancels immediately or at the end of the paid period
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription_id path string true "Subscription ID"
// @Param request body requests.CancelSubscriptionRequest true "Cancellation options"
// @Success 200 {object} responses.SubscriptionResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /subscriptions/{subscription_id}/cancel [post]
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	id, ok := h.common.parsePathUUID(c, "subscription_id")
	if !ok {
		return
	}
	var req requests.CancelSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	var subscription *db.Subscription
	err := h.common.WithTransaction(c.Request.Context(), func(tx pgx.Tx) error {
		var txErr error
		subscription, txErr = h.common.SubscriptionService.WithTransaction(tx).CancelSubscription(c.Request.Context(), params.CancelSubscriptionParams{
			SubscriptionID: id,
			Immediate:      req.Immediate,
			Reason:         req.Reason,
			Actor:          actorFromContext(c),
		})
		return txErr
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to cancel subscription")
		return
	}
	c.JSON(http.StatusOK, toSubscriptionResponse(*subscription))
}

// ChangeTier godoc
// @Summary Change a subscription's tier
// @Description Switches tier with proration of the remaining period
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription_id path string true "Subscription ID"
// @Param request body requests.ChangeTierRequest true "New tier"
// @Success 200 {object} responses.ProrationResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /subscriptions/{subscription_id}/tier [put]
func (h *SubscriptionHandler) ChangeTier(c *gin.Context) {
	id, ok := h.common.parsePathUUID(c, "subscription_id")
	if !ok {
		return
	}
	var req requests.ChangeTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}
	newTierID, err := uuid.Parse(req.NewTierID)
	if err != nil {
		h.common.HandleError(c, err, "Invalid new_tier_id format", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	var subscription *db.Subscription
	var proration *business.TierChangeProration
	err = h.common.WithTransaction(c.Request.Context(), func(tx pgx.Tx) error {
		updated, p, txErr := h.common.SubscriptionService.WithTransaction(tx).ChangeTier(c.Request.Context(), params.ChangeTierParams{
			SubscriptionID: id,
			NewTierID:      newTierID,
			Actor:          actorFromContext(c),
		})
		if txErr != nil {
			return txErr
		}
		subscription = updated
		proration = p
		return nil
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to change tier")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscription": toSubscriptionResponse(*subscription),
		"proration":    toProrationResponse(proration),
	})
}

// ListSubscriptionEvents godoc
// @Summary List a subscription's audit events
// @Tags subscriptions
// @Produce json
// @Param subscription_id path string true "Subscription ID"
// @Success 200 {array} responses.SubscriptionEventResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /subscriptions/{subscription_id}/events [get]
func (h *SubscriptionHandler) ListSubscriptionEvents(c *gin.Context) {
	id, ok := h.common.parsePathUUID(c, "subscription_id")
	if !ok {
		return
	}

	events, err := h.common.GetDB().ListSubscriptionEventsBySubscription(c.Request.Context(), id)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to list subscription events")
		return
	}

	items := make([]responses.SubscriptionEventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, toSubscriptionEventResponse(e))
	}
	c.JSON(http.StatusOK, items)
}
