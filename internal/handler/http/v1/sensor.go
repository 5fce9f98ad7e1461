package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/guest_safety_system/internal/models"
)

// @Summary Register a sensor
// @Description Register a new IoT sensor. Requires staff session.
// @Tags Sensors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sensor body CreateSensorRequest true "Sensor registration request"
// @Success 201 {object} models.Sensor
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sensors [post]
func (h *Handler) createSensor(c *gin.Context) {
	var input CreateSensorRequest
	log := h.logger.WithField("method", "createSensor")

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

	model := DTOToSensorModel(input)
	if err := h.sensorService.CreateSensor(c.Request.Context(), model); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, model)
}

// @Summary Get a list of sensors
// @Description Get all registered sensors with their current status. Requires staff session.
// @Tags Sensors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Sensor
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sensors [get]
func (h *Handler) listSensors(c *gin.Context) {
	log := h.logger.WithField("method", "listSensors")

	sensors, err := h.sensorService.ListSensors(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, sensors)
}

// @Summary Get sensor by ID
// @Description Get a single sensor by its ID. Requires staff session.
// @Tags Sensors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sensor ID"
// @Success 200 {object} models.Sensor
// @Failure 400 {object} map[string]string "Invalid sensor ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sensor not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sensors/{id} [get]
func (h *Handler) getSensor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sensor ID"})
		return
	}
	log := h.logger.WithField("method", "getSensor").WithField("id", id)

	sensor, err := h.sensorService.GetSensor(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, sensor)
}

// @Summary Update a sensor
// @Description Update the name, location or battery level of a sensor. Requires staff session.
// @Tags Sensors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sensor ID"
// @Param sensor body UpdateSensorRequest true "Sensor update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid sensor ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sensor not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sensors/{id} [patch]
func (h *Handler) updateSensor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sensor ID"})
		return
	}
	log := h.logger.WithField("method", "updateSensor").WithField("id", id)

	var input UpdateSensorRequest
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

	sensor, err := h.sensorService.GetSensor(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	if input.Name != "" {
		sensor.Name = input.Name
	}
	if input.Location != "" {
		sensor.Location = input.Location
	}
	if input.Battery != nil {
		sensor.Battery = *input.Battery
	}

	if err := h.sensorService.UpdateSensor(c.Request.Context(), sensor); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Delete a sensor
// @Description Remove a sensor from the registry. Requires staff session.
// @Tags Sensors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sensor ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid sensor ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sensor not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sensors/{id} [delete]
func (h *Handler) deleteSensor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sensor ID"})
		return
	}
	log := h.logger.WithField("method", "deleteSensor").WithField("id", id)

	if err := h.sensorService.DeleteSensor(c.Request.Context(), id); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get sensor alerts
// @Description Get sensor alerts, optionally only unacknowledged ones. Requires staff session.
// @Tags Sensors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param unacked query bool false "Return only unacknowledged alerts"
// @Success 200 {array} models.SensorAlert
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sensors/alerts [get]
func (h *Handler) listSensorAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listSensorAlerts")
	unackedOnly := c.Query("unacked") == "true"

	alerts, err := h.sensorService.ListAlerts(c.Request.Context(), unackedOnly)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

// @Summary Acknowledge a sensor alert
// @Description Acknowledge a sensor alert. Acknowledging twice is a no-op. Requires staff session.
// @Tags Sensors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sensors/alerts/{id}/ack [post]
func (h *Handler) acknowledgeAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "acknowledgeAlert").WithField("id", id)

	if err := h.sensorService.AcknowledgeAlert(c.Request.Context(), id); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Ingest a sensor reading
// @Description Ingest a reading pushed by a device. A transition into the alarm status raises an alert and may auto-create an incident. Requires API key.
// @Tags Ingest
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Sensor ID"
// @Param reading body SensorReadingRequest true "Sensor reading"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid sensor ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Sensor not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ingest/sensors/{id}/reading [post]
func (h *Handler) ingestSensorReading(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sensor ID"})
		return
	}
	log := h.logger.WithField("method", "ingestSensorReading").WithField("id", id)

	var input SensorReadingRequest
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

	reading := &models.SensorReading{
		SensorID:  id,
		Status:    input.Status,
		Battery:   input.Battery,
		Value:     input.Value,
		Timestamp: input.Timestamp,
	}
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now()
	}

	if err := h.sensorService.IngestReading(c.Request.Context(), reading); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}
