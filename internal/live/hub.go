package live

import (
	"AgentDock/pkg/agentdock"
	"AgentDock/pkg/log"
	"sync"

	"github.com/sirupsen/logrus"
)

// Subscriber is one websocket connection's notice queue.
type Subscriber struct {
	C chan Notice
}

// Hub owns one feed per tenant. Feeds spin up with the first subscriber
// and wind down with the last, so tenants nobody is watching cost nothing.
type Hub struct {
	client *agentdock.Client
	logger *logrus.Logger

	mu    sync.Mutex
	feeds map[string]*feed
}

func NewHub(client *agentdock.Client, logger *logrus.Logger) *Hub {
	return &Hub{
		client: client,
		logger: logger,
		feeds:  make(map[string]*feed),
	}
}

// Subscribe registers a browser for a tenant's resource-change notices.
// The first subscriber's credentials drive the tenant's backend stream and
// polling until the feed restarts.
func (h *Hub) Subscribe(tenantID string, creds agentdock.Session) *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.feeds[tenantID]
	if !ok {
		f = newFeed(tenantID, h.client, creds, h.logger)
		h.feeds[tenantID] = f
		f.start()
		h.logger.WithFields(log.Fields{
			"tenant_id": tenantID,
		}).Info("Live feed started")
	}

	sub := &Subscriber{C: make(chan Notice, 16)}
	f.add(sub)
	return sub
}

func (h *Hub) Unsubscribe(tenantID string, sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.feeds[tenantID]
	if !ok {
		return
	}

	if remaining := f.remove(sub); remaining == 0 {
		f.stop()
		delete(h.feeds, tenantID)
		h.logger.WithFields(log.Fields{
			"tenant_id": tenantID,
		}).Info("Live feed stopped")
	}
}

// Close stops every feed; used on server shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for tenantID, f := range h.feeds {
		f.stop()
		delete(h.feeds, tenantID)
	}
}
