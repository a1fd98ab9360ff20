// internal/notify/notifier.go
package notify

import (
	"flowius-manage-api-server/internal/socket"

	"go.uber.org/zap"
)

// Notifier delivers fire-and-forget success confirmations to connected
// consoles. There is no failure path: every user-reachable mutation either
// succeeds with a confirmation or is blocked by validation before it runs.
type Notifier struct {
	Hub    *socket.Hub
	Logger *zap.SugaredLogger
}

// Success broadcasts a confirmation message.
func (n *Notifier) Success(message string) {
	n.Logger.Infof("notify: %s", message)
	n.Hub.Broadcast(socket.Event{Type: "notification", Message: message})
}
