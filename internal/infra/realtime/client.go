// Package realtime is the authenticated WebSocket push channel. It has a
// single connect/disconnect lifecycle; a dropped connection stays dropped
// until Connect is called again.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"curator/config"
	"curator/internal/domain/entity"
	"curator/internal/domain/lifecycle"
	"curator/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	handshakeTimeout = 10 * time.Second
	closeWriteWait   = time.Second
)

type subscription struct {
	id      uint64
	handler service.RealtimeHandler
}

// Client implements service.RealtimeChannel over gorilla/websocket.
type Client struct {
	url    string
	dialer *websocket.Dialer
	logger *slog.Logger

	mu       sync.Mutex
	conn     *websocket.Conn
	done     chan struct{}
	handlers map[entity.NotificationType][]subscription
	nextID   uint64
}

// NewClient creates a channel for the given ws:// or wss:// URL.
func NewClient(url string, logger *slog.Logger) *Client {
	return &Client{
		url: url,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
		logger:   logger,
		handlers: make(map[entity.NotificationType][]subscription),
	}
}

// Connect dials the server with the access token in the handshake and starts
// the read loop. An existing connection is closed first.
func (c *Client) Connect(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return errors.New("realtime: access token is required")
	}

	if err := c.Disconnect(); err != nil {
		c.logger.Warn("Closing previous realtime connection failed", slog.Any("error", err))
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+accessToken)

	conn, resp, err := c.dialer.DialContext(ctx, c.url, header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return errors.Wrap(err, "realtime: dial")
	}

	done := make(chan struct{})

	c.mu.Lock()
	c.conn = conn
	c.done = done
	c.mu.Unlock()

	c.logger.Info("Realtime channel connected", slog.String("url", c.url))

	go c.readLoop(conn, done)

	return nil
}

// On registers handler for eventType. The returned func removes it.
func (c *Client) On(eventType entity.NotificationType, handler service.RealtimeHandler) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.handlers[eventType] = append(c.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()

		subs := c.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				c.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)

				break
			}
		}
	}
}

// Disconnect sends a close frame and waits for the read loop to exit.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	conn, done := c.conn, c.done
	c.conn, c.done = nil, nil
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeWriteWait))
	err := conn.Close()

	select {
	case <-done:
	case <-time.After(lifecycle.DefaultTimeout):
		c.logger.Warn("Realtime read loop did not stop in time")
	}

	c.logger.Info("Realtime channel disconnected")

	return errors.WithStack(err)
}

// Connected reports whether a connection is open.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn != nil
}

func (c *Client) readLoop(conn *websocket.Conn, done chan struct{}) {
	defer close(done)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Warn("Realtime channel closed unexpectedly", slog.Any("error", err))
			}
			c.dropIfCurrent(conn)

			return
		}

		var event service.RealtimeEvent
		if err := json.Unmarshal(data, &event); err != nil || event.Type == "" {
			c.logger.Warn("Ignoring malformed realtime frame", slog.Int("bytes", len(data)))

			continue
		}

		c.dispatch(event)
	}
}

// dropIfCurrent forgets conn after the server closed it, without touching a
// newer connection.
func (c *Client) dropIfCurrent(conn *websocket.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == conn {
		c.conn = nil
		c.done = nil
		_ = conn.Close()
	}
}

func (c *Client) dispatch(event service.RealtimeEvent) {
	c.mu.Lock()
	subs := make([]subscription, len(c.handlers[event.Type]))
	copy(subs, c.handlers[event.Type])
	c.mu.Unlock()

	if len(subs) == 0 {
		c.logger.Debug("No handler for realtime event", slog.String("type", string(event.Type)))

		return
	}

	for _, s := range subs {
		s.handler(event)
	}
}

// Params holds dependencies for the realtime channel, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New provides the channel. When realtime is disabled the channel is a
// no-op that never connects.
func New(params Params) service.RealtimeChannel {
	if !params.Config.RealtimeEnabled() {
		params.Logger.Info("Realtime disabled, using no-op channel")

		return noopChannel{}
	}

	client := NewClient(params.Config.WebSocket.URL, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Disconnect()
		},
	})

	return client
}

type noopChannel struct{}

func (noopChannel) Connect(context.Context, string) error { return nil }

func (noopChannel) On(entity.NotificationType, service.RealtimeHandler) func() { return func() {} }

func (noopChannel) Disconnect() error { return nil }

func (noopChannel) Connected() bool { return false }

// Module provides the realtime FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
