package handler

import (
	"net/http"

	"complaintdesk/backend/internal/feed"
	"complaintdesk/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboard origin checking is deployment-specific; lock this down
	// behind the reverse proxy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeFeed upgrades the connection to a WebSocket and registers it as a
// complaint-feed subscriber. The hub starts the client's pumps.
func (h *Handler) ServeFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
		return
	}

	client := &feed.WebSocketClient{
		ID:   uuid.New().String(),
		Conn: conn,
		Hub:  h.Hub,
		Send: make(chan models.ComplaintEvent, 256),
	}

	h.Hub.RegisterCh <- client
}
