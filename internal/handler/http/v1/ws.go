package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Клиенты персонала подключаются из браузера, источник проверяется JWT-middleware
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Subscribe to real-time guest safety events
// @Description Upgrade the connection to WebSocket and receive guest_safety_incident, guest_safety_incident_update, hardware_device_status and guest_message events. Requires staff session.
// @Tags System
// @Security BearerAuth
// @Success 101 "Switching Protocols"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /ws [get]
func (h *Handler) serveWS(c *gin.Context) {
	log := h.logger.WithField("method", "serveWS")

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade connection")
		return
	}

	h.hub.HandleConnection(conn)
}
