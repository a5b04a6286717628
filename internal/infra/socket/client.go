// Package socket is the Socket.IO client behind the console's live notification stream.
package socket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"rxconsole/config"
	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/domain/service"
	"rxconsole/internal/infra/metrics"
)

const handshakeTimeout = 10 * time.Second

// Client keeps one websocket connection to the backend's Socket.IO server and fans its events out
// to subscribers. Dropped connections are retried with capped exponential backoff until maxRetries
// consecutive attempts fail.
type Client struct {
	url    string
	cfg    *config.SocketConfig
	tokens service.TokenSource
	logger *slog.Logger
	dialer *websocket.Dialer

	mu       sync.RWMutex
	handlers map[uint64]service.EventHandler
	nextID   uint64

	lifeMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

var _ service.EventStream = (*Client)(nil)

// NewClient creates a client for the configured socket. tokens may be nil.
func NewClient(cfg *config.SocketConfig, tokens service.TokenSource, logger *slog.Logger) (*Client, error) {
	target, err := socketURL(cfg.URL, cfg.Path)
	if err != nil {
		return nil, err
	}

	return &Client{
		url:      target,
		cfg:      cfg,
		tokens:   tokens,
		logger:   logger.With(slog.String("component", "socket")),
		dialer:   &websocket.Dialer{HandshakeTimeout: handshakeTimeout, Proxy: http.ProxyFromEnvironment},
		handlers: make(map[uint64]service.EventHandler),
	}, nil
}

// socketURL builds the Engine.IO v4 websocket endpoint.
func socketURL(base, path string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", errors.Wrap(err, "parse socket.url")
	}

	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", errors.Errorf("unsupported socket scheme: %q", u.Scheme)
	}

	if path == "" {
		path = "/socket.io/"
	}
	u.Path = "/" + strings.Trim(path, "/") + "/"
	u.RawQuery = url.Values{"EIO": {"4"}, "transport": {"websocket"}}.Encode()

	return u.String(), nil
}

type subscription struct {
	once   sync.Once
	client *Client
	id     uint64
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.client.mu.Lock()
		delete(s.client.handlers, s.id)
		s.client.mu.Unlock()
	})
}

// Subscribe registers handler for every event until the returned subscription is released.
func (c *Client) Subscribe(handler service.EventHandler) service.Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	c.handlers[c.nextID] = handler

	return &subscription{client: c, id: c.nextID}
}

func (c *Client) emit(name string, payload json.RawMessage) {
	metrics.SocketEvents.WithLabelValues(name).Inc()

	c.mu.RLock()
	handlers := make([]service.EventHandler, 0, len(c.handlers))
	for _, h := range c.handlers {
		handlers = append(handlers, h)
	}
	c.mu.RUnlock()

	event := service.Event{Name: name, Payload: payload, ReceivedAt: time.Now()}
	for _, h := range handlers {
		h(event)
	}
}

// Start launches the connection loop in the background. It does not wait for the first connect.
func (c *Client) Start(_ context.Context) error {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	if c.cancel != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.run(ctx)

	c.logger.Info("Notification socket started", slog.String("url", c.url))

	return nil
}

// Stop closes the connection and waits for the loop to exit.
func (c *Client) Stop(ctx context.Context) error {
	c.lifeMu.Lock()
	cancel, done := c.cancel, c.done
	c.lifeMu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		c.logger.Info("Notification socket stopped")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "stop notification socket")
	}
}

func (c *Client) newBackOff() backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.cfg.InitialBackoff
	exp.MaxInterval = c.cfg.MaxBackoff
	exp.MaxElapsedTime = 0

	return backoff.WithMaxRetries(exp, uint64(c.cfg.MaxRetries))
}

func (c *Client) run(ctx context.Context) {
	defer close(c.done)

	bo := c.newBackOff()
	everConnected := false
	attempt := 0

	for {
		attempt++
		established, err := c.session(ctx, everConnected)
		if ctx.Err() != nil {
			return
		}

		if established {
			everConnected = true
			attempt = 1
			bo.Reset()
			metrics.SocketReconnects.WithLabelValues("connected").Inc()
		} else {
			metrics.SocketReconnects.WithLabelValues("failed").Inc()
		}

		c.logger.Warn("Notification socket connection lost",
			slog.Int("attempt", attempt),
			slog.Any("error", domainerrors.NewSocketConnectionError(attempt, err)),
		)

		wait := bo.NextBackOff()
		if wait == backoff.Stop {
			c.logger.Error("Notification socket gave up reconnecting",
				slog.Int("max_retries", c.cfg.MaxRetries),
			)

			return
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
		}
	}
}

func (c *Client) token(ctx context.Context) string {
	if c.tokens == nil {
		return ""
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.logger.Debug("Connecting socket without session token", slog.Any("error", err))

		return ""
	}

	return token
}

// session runs one connection until it fails. established reports whether the namespace connect
// succeeded, which resets the retry budget.
func (c *Client) session(ctx context.Context, reconnect bool) (established bool, err error) {
	conn, resp, err := c.dialer.DialContext(ctx, c.url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		c.emit(service.EventConnectError, nil)

		return false, errors.Wrap(err, "dial notification socket")
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	defer func() {
		if established {
			c.emit(service.EventDisconnect, nil)
		}
	}()

	var window time.Duration
	extend := func() {
		if window > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(window))
		}
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return established, errors.Wrap(err, "read notification socket")
		}

		f, err := parseFrame(string(data))
		if err != nil {
			c.logger.Warn("Skipping malformed socket frame", slog.Any("error", err))

			continue
		}

		switch f.kind {
		case frameOpen:
			var hs handshake
			if err := json.Unmarshal(f.data, &hs); err != nil {
				return false, errors.Wrap(err, "decode socket handshake")
			}
			window = time.Duration(hs.PingInterval+hs.PingTimeout) * time.Millisecond
			extend()

			if err := conn.WriteMessage(websocket.TextMessage, []byte(connectPacket(c.token(ctx)))); err != nil {
				return false, errors.Wrap(err, "send namespace connect")
			}

		case framePing:
			extend()
			if err := conn.WriteMessage(websocket.TextMessage, []byte{enginePong}); err != nil {
				return established, errors.Wrap(err, "send pong")
			}

		case frameConnect:
			established = true
			name := service.EventConnect
			if reconnect {
				name = service.EventReconnect
			}
			c.logger.Info("Notification socket connected", slog.Bool("reconnect", reconnect))
			c.emit(name, nil)

		case frameConnectError:
			c.emit(service.EventConnectError, f.data)

			return established, errors.Errorf("namespace connect refused: %s", string(f.data))

		case frameEvent:
			c.emit(f.event, f.payload)

		case frameDisconnect:
			return established, errors.New("server disconnected the namespace")

		case frameClose:
			return established, errors.New("server closed the connection")
		}
	}
}
