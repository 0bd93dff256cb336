package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	domainErrors "portfolio-go-server/domain/errors"
	"portfolio-go-server/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler upgrades public viewers onto the live preview hub. The preview
// is read-only public content, so no token is required.
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *ws.Hub, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || strings.HasPrefix(origin, "http://localhost") {
					return true
				}
				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}
				log.Printf("[WS] rejecting origin %s", origin)
				return false
			},
		},
	}
}

// HandleWS subscribes a viewer to one section's preview stream.
// GET /ws?sectionId=hero
func (h *WSHandler) HandleWS(c *gin.Context) {
	sectionID := c.Query("sectionId")
	if sectionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sectionId is required"})
		return
	}

	room, err := h.hub.GetOrCreateRoom(sectionID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUnknownSection) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown section"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] upgrade failed: %v", err)
		return
	}

	client := ws.NewClient(conn, sectionID)
	room.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
