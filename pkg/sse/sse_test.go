package sse

import (
	"AgentDock/pkg/log"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListen_DispatchesNamedEvents(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "event: tenant_event\n")
		fmt.Fprint(w, "data: {\"type\":\"order_created\"}\n\n")
		fmt.Fprint(w, ": keep-alive comment\n\n")
		fmt.Fprint(w, "event: tenant_event\n")
		fmt.Fprint(w, "data: {\"type\":\"message_in\"}\n\n")
		flusher.Flush()
	}))
	defer backend.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan Event, 4)
	client := New(log.NewLogger(), backend.URL)
	client.reconnectWait = time.Hour

	go client.Listen(ctx, func(ev Event) {
		events <- ev
	})

	first := waitForEvent(t, events)
	assert.Equal(t, "tenant_event", first.Name)
	assert.JSONEq(t, `{"type":"order_created"}`, string(first.Data))

	second := waitForEvent(t, events)
	assert.Equal(t, "tenant_event", second.Name)
	assert.JSONEq(t, `{"type":"message_in"}`, string(second.Data))
}

func TestListen_StopsOnCancel(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		<-r.Context().Done()
	}))
	defer backend.Close()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	client := New(log.NewLogger(), backend.URL)
	go func() {
		client.Listen(ctx, func(Event) {})
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("listener did not stop after cancel")
	}
}

func waitForEvent(t *testing.T, events chan Event) Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}
