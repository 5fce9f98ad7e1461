package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create a guest message
// @Description Record a guest message and broadcast it to connected staff clients. Requires staff session.
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body CreateMessageRequest true "Guest message"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /messages [post]
func (h *Handler) createMessage(c *gin.Context) {
	var input CreateMessageRequest
	log := h.logger.WithField("method", "createMessage")

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

	model := DTOToMessageModel(input)
	if err := h.messageService.CreateMessage(c.Request.Context(), model); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToMessageResponse(model))
}

// @Summary Get a list of guest messages
// @Description Get a paginated list of guest messages, optionally only unread ones. Requires staff session.
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Param unread query bool false "Return only unread messages"
// @Success 200 {array} MessageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /messages [get]
func (h *Handler) listMessages(c *gin.Context) {
	log := h.logger.WithField("method", "listMessages")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	unreadOnly := c.Query("unread") == "true"

	messages, err := h.messageService.ListMessages(c.Request.Context(), unreadOnly, page, pageSize)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToMessageResponses(messages))
}

// @Summary Mark a guest message as read
// @Description Mark a guest message as read. Marking an already-read message is a no-op. Requires staff session.
// @Tags Messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid message ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Message not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /messages/{id}/read [post]
func (h *Handler) markMessageRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message ID"})
		return
	}
	log := h.logger.WithField("method", "markMessageRead").WithField("id", id)

	if err := h.messageService.MarkRead(c.Request.Context(), id); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}
