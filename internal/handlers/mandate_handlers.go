package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clubhouse/clubhouse-api/internal/client/directdebit"
	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/types/api/params"
	"github.com/clubhouse/clubhouse-api/internal/types/api/requests"
	"github.com/clubhouse/clubhouse-api/internal/types/api/responses"
	"github.com/clubhouse/clubhouse-api/internal/types/business"
)

// MandateHandler exposes Direct Debit mandate setup over HTTP.
type MandateHandler struct {
	common   *CommonServices
	provider string
}

func NewMandateHandler(common *CommonServices, provider string) *MandateHandler {
	return &MandateHandler{common: common, provider: provider}
}

// SetupMandate godoc
// @Summary Start a mandate setup flow
// @Description Creates a hosted Direct Debit authorization flow and returns its URL
// @Tags mandates
// @Accept json
// @Produce json
// @Param request body requests.SetupMandateRequest true "Payer details"
// @Success 201 {object} responses.SetupFlowResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 502 {object} responses.ErrorResponse
// @Router /mandates/setup [post]
func (h *MandateHandler) SetupMandate(c *gin.Context) {
	var req requests.SetupMandateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	userID, _ := uuid.Parse(req.UserID)
	clubID, _ := uuid.Parse(req.ClubID)

	var flow *directdebit.SetupFlow
	var token string
	err := h.common.WithTransaction(c.Request.Context(), func(tx pgx.Tx) error {
		var txErr error
		flow, token, txErr = h.common.MandateService.WithTransaction(tx).InitiateSetupFlow(c.Request.Context(), params.InitiateSetupFlowParams{
			UserID:   userID,
			ClubID:   clubID,
			Provider: h.provider,
			Contact: business.CustomerContact{
				Email:      req.Email,
				GivenName:  req.GivenName,
				FamilyName: req.FamilyName,
			},
			SuccessURL: req.SuccessURL,
			CancelURL:  req.CancelURL,
			Scheme:     req.Scheme,
		})
		return txErr
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to start mandate setup")
		return
	}

	c.JSON(http.StatusCreated, responses.SetupFlowResponse{
		AuthorisationURL: flow.AuthorisationURL,
		StateToken:       token,
		ExpiresAt:        flow.ExpiresAt,
	})
}

// CompleteMandate godoc
// @Summary Complete a mandate setup flow
// @Description Finalizes the hosted flow after the payer returns from the provider
// @Tags mandates
// @Accept json
// @Produce json
// @Param state query string true "Signed state token from setup"
// @Param flow_id query string false "Provider flow id to cross-check"
// @Success 200 {object} responses.MandateResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /mandates/complete [post]
func (h *MandateHandler) CompleteMandate(c *gin.Context) {
	stateToken := c.Query("state")
	if stateToken == "" {
		h.common.HandleError(c, nil, "Missing state token", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	var mandate *db.Mandate
	err := h.common.WithTransaction(c.Request.Context(), func(tx pgx.Tx) error {
		var txErr error
		mandate, txErr = h.common.MandateService.WithTransaction(tx).CompleteSetupFlow(c.Request.Context(), params.CompleteSetupFlowParams{
			StateToken: stateToken,
			FlowID:     c.Query("flow_id"),
		})
		return txErr
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to complete mandate setup")
		return
	}

	c.JSON(http.StatusOK, toMandateResponse(*mandate))
}

// CancelMandate godoc
// @Summary Cancel a mandate
// @Tags mandates
// @Produce json
// @Param mandate_id path string true "Mandate ID"
// @Success 200 {object} responses.MandateResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /mandates/{mandate_id} [delete]
func (h *MandateHandler) CancelMandate(c *gin.Context) {
	id, ok := h.common.parsePathUUID(c, "mandate_id")
	if !ok {
		return
	}
	userID, err := uuid.Parse(c.GetHeader("X-User-ID"))
	if err != nil {
		h.common.HandleError(c, err, "Missing or invalid X-User-ID header", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	var mandate *db.Mandate
	err = h.common.WithTransaction(c.Request.Context(), func(tx pgx.Tx) error {
		var txErr error
		mandate, txErr = h.common.MandateService.WithTransaction(tx).CancelMandate(c.Request.Context(), params.CancelMandateParams{
			MandateID: id,
			UserID:    userID,
		})
		return txErr
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to cancel mandate")
		return
	}

	c.JSON(http.StatusOK, toMandateResponse(*mandate))
}

// ListMandates godoc
// @Summary List a user's mandates in a club
// @Tags mandates
// @Produce json
// @Param user_id path string true "User ID"
// @Param club_id query string true "Club ID"
// @Success 200 {array} responses.MandateResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /users/{user_id}/mandates [get]
func (h *MandateHandler) ListMandates(c *gin.Context) {
	userID, ok := h.common.parsePathUUID(c, "user_id")
	if !ok {
		return
	}
	clubID, err := uuid.Parse(c.Query("club_id"))
	if err != nil {
		h.common.HandleError(c, err, "Invalid club_id format", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	mandates, err := h.common.MandateService.ListMandates(c.Request.Context(), userID, clubID, h.provider)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to list mandates")
		return
	}

	items := make([]responses.MandateResponse, 0, len(mandates))
	for _, m := range mandates {
		items = append(items, toMandateResponse(m))
	}
	c.JSON(http.StatusOK, items)
}
