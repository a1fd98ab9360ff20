// internal/api/handlers/websocket_handler.go
package handlers

import (
	"net/http"
	"time"

	"flowius-manage-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Maximum wait for any message from the client before the read loop ends.
const pongWait = 30 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	Hub    *socket.Hub
	Logger *zap.SugaredLogger
}

// ServeWs upgrades the connection and keeps it registered on the hub until
// the client goes away. Events are push-only; the read loop exists to
// notice disconnects and to extend the deadline on client pings.
func (h *WebSocketHandler) ServeWs(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Logger.Errorf("Failed to upgrade connection: %v", err)
		return
	}

	clientID := uuid.New().String()
	h.Hub.Register(clientID, conn)

	defer func() {
		h.Hub.Unregister(clientID)
		conn.Close()
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPingHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.Logger.Warnf("Unexpected close error: %v", err)
			}
			break
		}
	}
}
