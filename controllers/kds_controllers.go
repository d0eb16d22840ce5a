package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/bill-printing-app/kds"
	"github.com/yeremiapane/bill-printing-app/utils"
)

type KDSController struct {
	Hub      *kds.Hub
	upgrader websocket.Upgrader
}

// NewKDSController accepts handshakes from allowedOrigins; "*" or an empty list allows any.
func NewKDSController(hub *kds.Hub, allowedOrigins []string) *KDSController {
	allowAll := len(allowedOrigins) == 0
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return &KDSController{
		Hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowAll || origin == "" || allowed[origin]
			},
		},
	}
}

// Stream -> websocket feed of order events for the kitchen display
func (kc *KDSController) Stream(c *gin.Context) {
	role := c.GetString("role")

	ws, err := kc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("KDS upgrade failed: %v", err)
		return
	}

	kc.Hub.RegisterClient(ws, role)
	utils.InfoLogger.Printf("KDS client connected (role=%s, clients=%d)", role, kc.Hub.ClientCount())

	// Displays only listen; reading keeps control frames flowing until the client leaves.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	kc.Hub.UnregisterClient(ws)
	utils.InfoLogger.Printf("KDS client disconnected (role=%s)", role)
}
