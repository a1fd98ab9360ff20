// internal/socket/hub.go
package socket

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Event is one message pushed to connected consoles. Type is either
// "store_changed" (re-pull whatever you render) or "notification" (show the
// message to the operator).
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

// Hub tracks every connected console client and fans events out to all of
// them.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*websocket.Conn
	logger  *zap.SugaredLogger
}

// NewHub creates an empty Hub.
func NewHub(logger *zap.SugaredLogger) *Hub {
	return &Hub{
		clients: make(map[string]*websocket.Conn),
		logger:  logger,
	}
}

// Register adds a client connection under its id.
func (h *Hub) Register(clientID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[clientID] = conn
	h.logger.Infof("WebSocket client registered: %s", clientID)
}

// Unregister removes a client.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[clientID]; ok {
		delete(h.clients, clientID)
		h.logger.Infof("WebSocket client unregistered: %s", clientID)
	}
}

// Broadcast sends an event to every connected client. Send failures are
// logged and skipped; a dead connection cleans itself up in the read loop.
func (h *Hub) Broadcast(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.logger.Errorf("Failed to encode event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Warnf("Failed to send event to %s: %v", id, err)
		}
	}
}

// ClientCount reports how many consoles are connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
