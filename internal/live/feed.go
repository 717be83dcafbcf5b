package live

import (
	"AgentDock/pkg/agentdock"
	"AgentDock/pkg/log"
	"AgentDock/pkg/sse"
	"crypto/sha256"
	"net/url"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Notice tells a browser that one resource changed upstream; the page
// re-fetches through the normal endpoint.
type Notice struct {
	Resource string `json:"resource"`
	Type     string `json:"type"`
}

// watcher polls one resource on its own cadence and re-checks early when a
// matching backend event arrives. A sha256 over the raw list bytes decides
// whether anything actually changed.
type watcher struct {
	resource string
	path     string
	interval time.Duration
	accepts  func(eventType string) bool

	runner *Runner

	mu        sync.Mutex
	hasHash   bool
	lastHash  [sha256.Size]byte
	eventType string
}

func (w *watcher) noteEvent(eventType string) {
	w.mu.Lock()
	w.eventType = eventType
	w.mu.Unlock()
	w.runner.Trigger()
}

func (w *watcher) takeEventType() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	eventType := w.eventType
	w.eventType = ""
	if eventType == "" {
		eventType = "refresh"
	}
	return eventType
}

// feed is all live state for one tenant: a set of watchers, the backend
// event stream feeding them, and the websocket subscribers to notify.
type feed struct {
	tenantID string
	client   *agentdock.Client
	creds    agentdock.Session
	logger   *logrus.Logger
	cancel   context.CancelFunc

	mu          sync.Mutex
	subscribers map[*Subscriber]struct{}
	watchers    []*watcher
}

func acceptAny(string) bool { return true }

func acceptTypes(types ...string) func(string) bool {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return func(eventType string) bool {
		_, ok := set[eventType]
		return ok
	}
}

func newFeed(tenantID string, client *agentdock.Client, creds agentdock.Session, logger *logrus.Logger) *feed {
	f := &feed{
		tenantID:    tenantID,
		client:      client,
		creds:       creds,
		logger:      logger,
		subscribers: make(map[*Subscriber]struct{}),
	}

	prefix := "/tenants/" + url.PathEscape(tenantID)
	specs := []struct {
		resource string
		path     string
		interval time.Duration
		accepts  func(string) bool
	}{
		{"bookings", prefix + "/appointments", 8 * time.Second, acceptAny},
		{"chats", prefix + "/conversations", 8 * time.Second, acceptAny},
		{"complaints", prefix + "/complaints", 10 * time.Second, acceptAny},
		{"orders", prefix + "/orders", 30 * time.Second, acceptTypes("order_created", "order_updated")},
		{"handoffs", prefix + "/handoffs", 30 * time.Second, acceptTypes("handoff_created", "handoff_updated")},
		{"trace", prefix + "/trace", 30 * time.Second, acceptTypes("message_in", "message_out")},
		{"stats", prefix + "/stats", 30 * time.Second, acceptAny},
	}

	for _, spec := range specs {
		w := &watcher{
			resource: spec.resource,
			path:     spec.path,
			interval: spec.interval,
			accepts:  spec.accepts,
		}
		w.runner = NewRunner(w.interval, func(ctx context.Context) {
			f.refresh(ctx, w)
		})
		f.watchers = append(f.watchers, w)
	}

	return f
}

func (f *feed) start() {
	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel

	for _, w := range f.watchers {
		go w.runner.Run(ctx)
	}

	streamURL := f.client.BaseURL() + "/tenants/" + url.PathEscape(f.tenantID) +
		"/events?token=" + url.QueryEscape(f.creds.AuthToken())
	stream := sse.New(f.logger, streamURL)
	go stream.Listen(ctx, f.dispatch)
}

func (f *feed) stop() {
	if f.cancel != nil {
		f.cancel()
	}
}

func (f *feed) dispatch(ev sse.Event) {
	if ev.Name != "tenant_event" {
		return
	}

	var payload struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(ev.Data, &payload); err != nil || payload.Type == "" {
		return
	}

	for _, w := range f.watchers {
		if w.accepts(payload.Type) {
			w.noteEvent(payload.Type)
		}
	}
}

// refresh fetches the watched list and notifies subscribers when the bytes
// changed. The first fetch seeds the hash silently so subscribing does not
// announce a change that never happened.
func (f *feed) refresh(ctx context.Context, w *watcher) {
	body, err := f.client.GetRaw(ctx, f.creds, w.path)
	if err != nil {
		f.logger.WithFields(log.Fields{
			"tenant_id": f.tenantID,
			"resource":  w.resource,
			"error":     err.Error(),
		}).Debug("Live refresh failed")
		return
	}

	hash := sha256.Sum256(body)

	w.mu.Lock()
	changed := w.hasHash && hash != w.lastHash
	seeded := !w.hasHash
	w.lastHash = hash
	w.hasHash = true
	w.mu.Unlock()

	if seeded || !changed {
		return
	}

	f.broadcast(Notice{Resource: w.resource, Type: w.takeEventType()})
}

func (f *feed) broadcast(n Notice) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for sub := range f.subscribers {
		select {
		case sub.C <- n:
		default:
			// Slow consumer; it will catch up on its next poll.
		}
	}
}

func (f *feed) add(sub *Subscriber) {
	f.mu.Lock()
	f.subscribers[sub] = struct{}{}
	f.mu.Unlock()
}

func (f *feed) remove(sub *Subscriber) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subscribers, sub)
	return len(f.subscribers)
}
