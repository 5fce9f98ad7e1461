package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Get evacuation headcount
// @Description Get aggregated counts of guest evacuation check-ins. Requires staff session.
// @Tags Evacuation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.EvacuationHeadcount
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /evacuation/headcount [get]
func (h *Handler) evacuationHeadcount(c *gin.Context) {
	log := h.logger.WithField("method", "evacuationHeadcount")

	headcount, err := h.evacuationService.Headcount(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, headcount)
}

// @Summary Get evacuation check-ins
// @Description Get the per-guest evacuation check-in list. Requires staff session.
// @Tags Evacuation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.EvacuationCheckIn
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /evacuation/checkins [get]
func (h *Handler) listCheckIns(c *gin.Context) {
	log := h.logger.WithField("method", "listCheckIns")

	checkIns, err := h.evacuationService.ListCheckIns(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, checkIns)
}

// @Summary Update an evacuation check-in
// @Description Change the status of a guest's evacuation check-in. Requires staff session.
// @Tags Evacuation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Check-in ID"
// @Param checkin body UpdateCheckInRequest true "Check-in status update"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid check-in ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Check-in not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /evacuation/checkins/{id} [patch]
func (h *Handler) updateCheckIn(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check-in ID"})
		return
	}
	log := h.logger.WithField("method", "updateCheckIn").WithField("id", id)

	var input UpdateCheckInRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.evacuationService.UpdateCheckIn(c.Request.Context(), id, input.Status); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}
