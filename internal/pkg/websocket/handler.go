package websocket

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/auth"
)

// Handler upgrades admin requests to the notification stream.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewHandler creates a handler accepting upgrades from allowedOrigins
func NewHandler(hub *Hub, allowedOrigins []string, logger zerolog.Logger) *Handler {
	return &Handler{hub: hub, upgrader: newUpgrader(allowedOrigins), logger: logger}
}

// HandleConnection godoc
// @Summary Stream admin notifications
// @Description Upgrades the connection to a WebSocket that receives every notification raised by the admin screens
// @Tags admin, websocket
// @Security BearerAuth
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/notifications/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	session := auth.FromContext(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Str("userID", session.UserID.String()).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		userID: session.UserID.String(),
		logger: h.logger,
	}
	if !h.hub.join(client) {
		h.logger.Warn().Str("userID", client.userID).Msg("Notification hub stopped, closing WebSocket")
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Str("userID", client.userID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
