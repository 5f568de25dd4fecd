package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubhouse/clubhouse-api/internal/types/api/requests"
	"github.com/clubhouse/clubhouse-api/internal/types/api/responses"
)

// TierHandler exposes club tier administration over HTTP.
type TierHandler struct {
	common *CommonServices
}

func NewTierHandler(common *CommonServices) *TierHandler {
	return &TierHandler{common: common}
}

// CreateTier godoc
// @Summary Create a membership tier
// @Tags tiers
// @Accept json
// @Produce json
// @Param request body requests.CreateTierRequest true "Tier details"
// @Success 201 {object} responses.TierResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /tiers [post]
func (h *TierHandler) CreateTier(c *gin.Context) {
	var req requests.CreateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}

	tier, err := h.common.TierService.CreateTier(c.Request.Context(), req)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to create tier")
		return
	}
	c.JSON(http.StatusCreated, toTierResponse(*tier))
}

// GetTier godoc
// @Summary Get a tier by ID
// @Tags tiers
// @Produce json
// @Param tier_id path string true "Tier ID"
// @Success 200 {object} responses.TierResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /tiers/{tier_id} [get]
func (h *TierHandler) GetTier(c *gin.Context) {
	id, ok := h.common.parsePathUUID(c, "tier_id")
	if !ok {
		return
	}
	tier, err := h.common.TierService.GetTier(c.Request.Context(), id)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to get tier")
		return
	}
	c.JSON(http.StatusOK, toTierResponse(*tier))
}

// ListClubTiers godoc
// @Summary List a club's tiers
// @Tags tiers
// @Produce json
// @Param club_id path string true "Club ID"
// @Success 200 {array} responses.TierResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /clubs/{club_id}/tiers [get]
func (h *TierHandler) ListClubTiers(c *gin.Context) {
	clubID, ok := h.common.parsePathUUID(c, "club_id")
	if !ok {
		return
	}
	tiers, err := h.common.TierService.ListTiers(c.Request.Context(), clubID)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to list tiers")
		return
	}
	items := make([]responses.TierResponse, 0, len(tiers))
	for _, t := range tiers {
		items = append(items, toTierResponse(t))
	}
	c.JSON(http.StatusOK, items)
}

// UpdateTier godoc
// @Summary Update a tier's metadata
// @Tags tiers
// @Accept json
// @Produce json
// @Param tier_id path string true "Tier ID"
// @Param request body requests.UpdateTierRequest true "Metadata"
// @Success 200 {object} responses.TierResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /tiers/{tier_id} [put]
func (h *TierHandler) UpdateTier(c *gin.Context) {
	id, ok := h.common.parsePathUUID(c, "tier_id")
	if !ok {
		return
	}
	var req requests.UpdateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, h.common.GetLogger())
		return
	}
	tier, err := h.common.TierService.UpdateTier(c.Request.Context(), id, req)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to update tier")
		return
	}
	c.JSON(http.StatusOK, toTierResponse(*tier))
}

// DeactivateTier godoc
// @Summary Deactivate a tier
// @Description Hides the tier from new signups; existing subscriptions keep it
// @Tags tiers
// @Produce json
// @Param tier_id path string true "Tier ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /tiers/{tier_id} [delete]
func (h *TierHandler) DeactivateTier(c *gin.Context) {
	id, ok := h.common.parsePathUUID(c, "tier_id")
	if !ok {
		return
	}
	if err := h.common.TierService.DeactivateTier(c.Request.Context(), id); err != nil {
		h.common.HandleServiceError(c, err, "Failed to deactivate tier")
		return
	}
	c.JSON(http.StatusOK, responses.SuccessResponse{Message: "tier deactivated"})
}
