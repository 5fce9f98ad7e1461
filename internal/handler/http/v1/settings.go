package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get guest safety settings
// @Description Get the property-wide guest safety settings. Requires staff session.
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.GuestSafetySettings
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	log := h.logger.WithField("method", "getSettings")

	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// @Summary Save guest safety settings
// @Description Replace the property-wide guest safety settings. Requires manager role.
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body SettingsRequest true "Settings to save"
// @Success 200 {object} models.GuestSafetySettings
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not a manager"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings [put]
func (h *Handler) saveSettings(c *gin.Context) {
	var input SettingsRequest
	log := h.logger.WithField("method", "saveSettings")

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

	model := DTOToSettingsModel(input)
	if err := h.settingsService.Save(c.Request.Context(), model); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, model)
}
