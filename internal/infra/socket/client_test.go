package socket

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rxconsole/config"
	domainerrors "rxconsole/internal/domain/errors"
	"rxconsole/internal/domain/service"
	mockSvc "rxconsole/internal/mocks/service"
)

const waitTimeout = 2 * time.Second

// fakeServer speaks just enough Engine.IO v4 to drive the client.
type fakeServer struct {
	conns    atomic.Int32
	connects chan string
	pongs    chan struct{}
	script   func(fs *fakeServer, n int32, conn *websocket.Conn)
}

func newFakeServer(t *testing.T, script func(fs *fakeServer, n int32, conn *websocket.Conn)) (*fakeServer, *httptest.Server) {
	t.Helper()

	fs := &fakeServer{
		connects: make(chan string, 8),
		pongs:    make(chan struct{}, 8),
		script:   script,
	}
	server := httptest.NewServer(http.HandlerFunc(fs.serve))
	t.Cleanup(server.Close)

	return fs, server
}

func (fs *fakeServer) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/socket.io/" || r.URL.Query().Get("EIO") != "4" {
		http.NotFound(w, r)

		return
	}

	upgrader := websocket.Upgrader{}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	n := fs.conns.Add(1)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`0{"sid":"s1","pingInterval":25000,"pingTimeout":20000}`)); err != nil {
		return
	}
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return
	}
	fs.connects <- string(msg)
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`40{"sid":"n1"}`)); err != nil {
		return
	}

	fs.script(fs, n, conn)
}

// drain blocks until the client goes away, recording pongs.
func (fs *fakeServer) drain(conn *websocket.Conn) {
	readUntilClosed(conn, fs.pongs)
}

func readUntilClosed(conn *websocket.Conn, pongs chan<- struct{}) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if string(msg) == "3" && pongs != nil {
			pongs <- struct{}{}
		}
	}
}

func send(conn *websocket.Conn, frames ...string) {
	for _, f := range frames {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(f))
	}
}

func testConfig(url string) *config.SocketConfig {
	return &config.SocketConfig{
		URL:            url,
		Path:           "/socket.io/",
		MaxRetries:     2,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     20 * time.Millisecond,
	}
}

func startClient(t *testing.T, cfg *config.SocketConfig, tokens service.TokenSource) (*Client, chan service.Event) {
	t.Helper()

	client, err := NewClient(cfg, tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	events := make(chan service.Event, 32)
	client.Subscribe(func(e service.Event) { events <- e })

	require.NoError(t, client.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
		defer cancel()
		assert.NoError(t, client.Stop(ctx))
	})

	return client, events
}

func nextEvent(t *testing.T, events <-chan service.Event) service.Event {
	t.Helper()

	select {
	case e := <-events:
		return e
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for socket event")

		return service.Event{}
	}
}

func TestClient_DeliversEvents(t *testing.T) {
	fs, server := newFakeServer(t, func(fs *fakeServer, _ int32, conn *websocket.Conn) {
		send(conn, "2", `42["notification:new",{"id":"n1"}]`, `42["chat:message",{}]`)
		fs.drain(conn)
	})

	tokens := mockSvc.NewMockTokenSource(t)
	tokens.EXPECT().Token(mock.Anything).Return("bearer-token", nil)

	_, events := startClient(t, testConfig(server.URL), tokens)

	assert.Equal(t, service.EventConnect, nextEvent(t, events).Name)

	e := nextEvent(t, events)
	assert.Equal(t, "notification:new", e.Name)
	assert.True(t, e.IsNotification())
	assert.JSONEq(t, `{"id":"n1"}`, string(e.Payload))

	e = nextEvent(t, events)
	assert.Equal(t, "chat:message", e.Name)
	assert.False(t, e.IsNotification())

	select {
	case auth := <-fs.connects:
		assert.Equal(t, `40{"token":"bearer-token"}`, auth)
	case <-time.After(waitTimeout):
		t.Fatal("namespace connect not received")
	}
}

func TestClient_AnswersPing(t *testing.T) {
	fs, server := newFakeServer(t, func(fs *fakeServer, _ int32, conn *websocket.Conn) {
		send(conn, "2")
		fs.drain(conn)
	})

	_, events := startClient(t, testConfig(server.URL), nil)
	assert.Equal(t, service.EventConnect, nextEvent(t, events).Name)

	select {
	case <-fs.pongs:
	case <-time.After(waitTimeout):
		t.Fatal("pong not received")
	}
	assert.Equal(t, "40", <-fs.connects)
}

func TestClient_ReconnectsAfterDrop(t *testing.T) {
	_, server := newFakeServer(t, func(_ *fakeServer, n int32, conn *websocket.Conn) {
		if n == 1 {
			send(conn, `42["notification:new",{}]`)

			return
		}
		readUntilClosed(conn, nil)
	})

	_, events := startClient(t, testConfig(server.URL), nil)

	assert.Equal(t, service.EventConnect, nextEvent(t, events).Name)
	assert.Equal(t, "notification:new", nextEvent(t, events).Name)
	assert.Equal(t, service.EventDisconnect, nextEvent(t, events).Name)

	e := nextEvent(t, events)
	assert.Equal(t, service.EventReconnect, e.Name)
	assert.True(t, e.IsConnect())
}

func TestClient_GivesUpAfterMaxRetries(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client, events := startClient(t, testConfig(server.URL), nil)

	select {
	case <-client.done:
	case <-time.After(waitTimeout):
		t.Fatal("client kept retrying")
	}

	assert.Equal(t, int32(3), hits.Load())
	for range 3 {
		assert.Equal(t, service.EventConnectError, nextEvent(t, events).Name)
	}
}

func TestClient_ConnectErrorIsRetried(t *testing.T) {
	var hits atomic.Int32
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		hits.Add(1)

		send(conn, `0{"sid":"s1","pingInterval":25000,"pingTimeout":20000}`)
		_, _, _ = conn.ReadMessage()
		send(conn, `44{"message":"unauthorized"}`)
		readUntilClosed(conn, nil)
	}))
	t.Cleanup(server.Close)

	client, events := startClient(t, testConfig(server.URL), nil)

	e := nextEvent(t, events)
	assert.Equal(t, service.EventConnectError, e.Name)
	assert.JSONEq(t, `{"message":"unauthorized"}`, string(e.Payload))

	select {
	case <-client.done:
	case <-time.After(waitTimeout):
		t.Fatal("client kept retrying")
	}
	assert.Equal(t, int32(3), hits.Load())
}

func TestClient_Unsubscribe(t *testing.T) {
	client, err := NewClient(testConfig("http://localhost:1"), nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	var first, second atomic.Int32
	sub := client.Subscribe(func(service.Event) { first.Add(1) })
	client.Subscribe(func(service.Event) { second.Add(1) })

	client.emit("notification:new", nil)
	sub.Unsubscribe()
	sub.Unsubscribe()
	client.emit("notification:new", nil)

	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(2), second.Load())
}

func TestClient_StopWithoutStart(t *testing.T) {
	client, err := NewClient(testConfig("http://localhost:1"), nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	assert.NoError(t, client.Stop(context.Background()))
}

func TestSocketConnectionErrorWrapsCause(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := domainerrors.NewSocketConnectionError(2, cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 2, err.Attempt())
}
