package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/guest_safety_system/internal/config"
	"github.com/shenikar/guest_safety_system/internal/models"
	"github.com/shenikar/guest_safety_system/internal/realtime"
	"github.com/shenikar/guest_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService   service.IncidentService
	messageService    service.MessageService
	evacuationService service.EvacuationService
	settingsService   service.SettingsService
	sensorService     service.SensorService
	accountService    service.AccountService
	hub               *realtime.Hub
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	messageService service.MessageService,
	evacuationService service.EvacuationService,
	settingsService service.SettingsService,
	sensorService service.SensorService,
	accountService service.AccountService,
	hub *realtime.Hub,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService:   incidentService,
		messageService:    messageService,
		evacuationService: evacuationService,
		settingsService:   settingsService,
		sensorService:     sensorService,
		accountService:    accountService,
		hub:               hub,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// respondServiceError транслирует типизированные ошибки сервисного слоя в HTTP-статусы
func respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrPermission):
		log.WithError(err).Warn("Request rejected: permission denied")
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Requested entity not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrStaleUpdate):
		log.WithError(err).Warn("Stale update discarded")
		c.JSON(http.StatusConflict, gin.H{"error": "stale update discarded"})
	case errors.Is(err, service.ErrConflict):
		log.WithError(err).Warn("Request rejected: state conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "conflict with current state"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// actorRole возвращает роль сотрудника из контекста, заполненного JWT-middleware
func actorRole(c *gin.Context) string {
	return c.GetString(ctxAccountRole)
}

// @Summary Create a new incident
// @Description Create a new guest safety incident. Requires staff session.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

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

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents with optional status/severity/type filters. Requires staff session.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Param status query string false "Filter by status (reported|responding|resolved)"
// @Param severity query string false "Filter by severity (low|medium|high|critical)"
// @Param type query string false "Filter by derived type"
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	filter := models.IncidentFilter{
		Status:   c.Query("status"),
		Severity: c.Query("severity"),
		Type:     c.Query("type"),
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires staff session.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update an existing incident
// @Description Update descriptive fields of an incident by ID. Status is not changed through this endpoint. Requires staff session.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [patch]
func (h *Handler) updateIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
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

	model := UpdateDTOToIncidentModel(input)
	model.ID = id

	if err := h.incidentService.UpdateIncident(c.Request.Context(), model); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Assign a response team to an incident
// @Description Assign a response team to an incident in the reported status. Requires manager role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param assignment body AssignTeamRequest true "Team assignment request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not a manager"
// @Failure 404 {object} map[string]string "Incident or team not found"
// @Failure 409 {object} map[string]string "Incident already assigned or resolved"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/assign [post]
func (h *Handler) assignTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "assignTeam").WithField("id", id)

	var input AssignTeamRequest
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

	if err := h.incidentService.AssignTeam(c.Request.Context(), actorRole(c), id, input.TeamID); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Resolve an incident
// @Description Move an incident to the resolved status. The transition is one-way. Requires manager role.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not a manager"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident already resolved"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/resolve [post]
func (h *Handler) resolveIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "resolveIncident").WithField("id", id)

	if err := h.incidentService.ResolveIncident(c.Request.Context(), actorRole(c), id); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get response teams
// @Description Get all response teams with their current status. Requires staff session.
// @Tags Teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} TeamResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /teams [get]
func (h *Handler) listTeams(c *gin.Context) {
	log := h.logger.WithField("method", "listTeams")

	teams, err := h.incidentService.ListTeams(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToTeamResponses(teams))
}

// @Summary Push a new incident from a device or mobile agent
// @Description Ingest an incident reported by a device or mobile agent. Duplicates by ID are ignored. Requires API key.
// @Tags Ingest
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body PushIncidentRequest true "Pushed incident"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ingest/incidents [post]
func (h *Handler) pushIncident(c *gin.Context) {
	var input PushIncidentRequest
	log := h.logger.WithField("method", "pushIncident")

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

	if err := h.incidentService.ApplyPushedIncident(c.Request.Context(), PushDTOToIncidentModel(input)); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Push an incident update from a device or mobile agent
// @Description Ingest an incident update. Updates with reported_at older than the stored one beyond clock skew tolerance are discarded. Requires API key.
// @Tags Ingest
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body PushIncidentRequest true "Pushed incident update"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Stale update discarded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ingest/incidents/{id} [patch]
func (h *Handler) pushIncidentUpdate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "pushIncidentUpdate").WithField("id", id)

	var input PushIncidentRequest
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

	model := PushDTOToIncidentModel(input)
	model.ID = id

	if err := h.incidentService.ApplyPushedUpdate(c.Request.Context(), model); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
