package live

import (
	"AgentDock/pkg/agentdock"
	"AgentDock/pkg/log"
	"AgentDock/pkg/sse"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCreds struct{}

func (staticCreds) AuthToken() string    { return "test-token" }
func (staticCreds) RefreshToken() string { return "" }
func (staticCreds) StoreAuthToken(context.Context, string) error {
	return nil
}
func (staticCreds) StoreRefreshToken(context.Context, string) error {
	return nil
}

func testFeed(t *testing.T, backendURL string) *feed {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	client := agentdock.NewWithBaseURL(log.NewLogger(), backendURL)
	return newFeed("1", client, staticCreds{}, log.NewLogger())
}

func findWatcher(t *testing.T, f *feed, resource string) *watcher {
	t.Helper()
	for _, w := range f.watchers {
		if w.resource == resource {
			return w
		}
	}
	t.Fatalf("no watcher for %s", resource)
	return nil
}

func TestFeed_BroadcastsOnlyWhenBytesChange(t *testing.T) {
	var serves atomic.Int64
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tenants/1/stats", r.URL.Path)
		if serves.Add(1) <= 2 {
			w.Write([]byte(`{"messages_today":1}`))
			return
		}
		w.Write([]byte(`{"messages_today":2}`))
	}))
	defer backend.Close()

	f := testFeed(t, backend.URL)
	stats := findWatcher(t, f, "stats")

	sub := &Subscriber{C: make(chan Notice, 16)}
	f.add(sub)

	ctx := context.Background()

	// Seed fetch: no notice.
	f.refresh(ctx, stats)
	assert.Empty(t, sub.C)

	// Same bytes: still no notice.
	f.refresh(ctx, stats)
	assert.Empty(t, sub.C)

	// Changed bytes: one notice.
	f.refresh(ctx, stats)
	select {
	case n := <-sub.C:
		assert.Equal(t, "stats", n.Resource)
		assert.Equal(t, "refresh", n.Type)
	case <-time.After(time.Second):
		t.Fatal("no notice after change")
	}
}

func TestFeed_DispatchRoutesEventsByType(t *testing.T) {
	f := testFeed(t, "http://backend.invalid")

	f.dispatch(sse.Event{Name: "tenant_event", Data: []byte(`{"type":"order_created"}`)})

	orders := findWatcher(t, f, "orders")
	assert.Len(t, orders.runner.trigger, 1)
	assert.Equal(t, "order_created", orders.takeEventType())

	// Handoff watchers ignore order events; the catch-all ones do not.
	handoffs := findWatcher(t, f, "handoffs")
	assert.Empty(t, handoffs.runner.trigger)
	bookings := findWatcher(t, f, "bookings")
	assert.Len(t, bookings.runner.trigger, 1)
}

func TestFeed_DispatchIgnoresOtherEventNames(t *testing.T) {
	f := testFeed(t, "http://backend.invalid")

	f.dispatch(sse.Event{Name: "ping", Data: []byte(`{"type":"order_created"}`)})

	for _, w := range f.watchers {
		assert.Empty(t, w.runner.trigger)
	}
}

func TestHub_FeedLifecycle(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/tenants/1/events" {
			<-r.Context().Done()
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	t.Setenv("APP_ENV", "test")
	client := agentdock.NewWithBaseURL(log.NewLogger(), backend.URL)
	hub := NewHub(client, log.NewLogger())
	defer hub.Close()

	first := hub.Subscribe("1", staticCreds{})
	second := hub.Subscribe("1", staticCreds{})

	hub.mu.Lock()
	assert.Len(t, hub.feeds, 1)
	hub.mu.Unlock()

	hub.Unsubscribe("1", first)
	hub.mu.Lock()
	assert.Len(t, hub.feeds, 1)
	hub.mu.Unlock()

	hub.Unsubscribe("1", second)
	hub.mu.Lock()
	assert.Empty(t, hub.feeds)
	hub.mu.Unlock()
}
