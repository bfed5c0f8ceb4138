package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Thuanphan093164/Qly-NhaHang/kds"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// KDSHandler upgrades an authenticated staff connection to websocket
// and registers it with the broadcast hub.
func KDSHandler(c *gin.Context) {
	roleValue, exists := c.Get("role")
	if !exists {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	role, _ := roleValue.(string)

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	kds.RegisterClient(ws, role)
	defer kds.UnregisterClient(ws)

	// Drain until the client goes away; broadcasts are one-way.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
}
