package sse

import (
	"AgentDock/pkg/log"
	"bufio"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Event is one server-sent frame. Data holds the concatenated data lines.
type Event struct {
	Name string
	Data []byte
}

type Handler func(Event)

// Client keeps one server-sent-events stream alive. Every failure, from
// dial errors to mid-stream disconnects, waits out the reconnect interval
// and dials again; nothing surfaces to the caller.
type Client struct {
	url           string
	httpClient    *http.Client
	logger        *logrus.Logger
	reconnectWait time.Duration
}

func New(logger *logrus.Logger, url string) *Client {
	return &Client{
		url:           url,
		httpClient:    &http.Client{},
		logger:        logger,
		reconnectWait: 5 * time.Second,
	}
}

// Listen consumes the stream until ctx is cancelled, invoking handler for
// each complete frame.
func (c *Client) Listen(ctx context.Context, handler Handler) {
	for {
		if err := c.consume(ctx, handler); err != nil {
			c.logger.WithFields(log.Fields{
				"url":   c.url,
				"error": err.Error(),
			}).Debug("Event stream interrupted")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.reconnectWait):
		}
	}
}

func (c *Client) consume(ctx context.Context, handler Handler) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var name string
	var data []string

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if len(data) > 0 {
				handler(Event{Name: name, Data: []byte(strings.Join(data, "\n"))})
			}
			name = ""
			data = nil
		case strings.HasPrefix(line, "event:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		}
	}
	return scanner.Err()
}
