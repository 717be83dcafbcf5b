package liveHandler

import (
	"AgentDock/internal/middleware"
	"AgentDock/internal/session"
	"AgentDock/pkg/log"
	"time"

	"github.com/gofiber/websocket/v2"
)

const writeTimeout = 10 * time.Second

// handleWebSocket pushes resource-change notices to one browser tab. The
// client sends nothing meaningful; reads exist only to notice the close.
func (h *LiveHandler) handleWebSocket(c *websocket.Conn) {
	sess, ok := c.Locals(middleware.SessionKey).(*session.Session)
	if !ok || sess == nil || sess.TenantID() == "" {
		c.Close()
		return
	}

	tenantID := sess.TenantID()
	sub := h.hub.Subscribe(tenantID, sess)
	defer h.hub.Unsubscribe(tenantID, sub)

	h.log.WithFields(log.Fields{
		"tenant_id": tenantID,
	}).Debug("Live websocket client connected")
	defer h.log.WithFields(log.Fields{
		"tenant_id": tenantID,
	}).Debug("Live websocket client disconnected")

	c.SetPingHandler(func(data string) error {
		return c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second))
	})

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case notice := <-sub.C:
			if err := c.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
				return
			}
			if err := c.WriteJSON(notice); err != nil {
				return
			}
		}
	}
}
