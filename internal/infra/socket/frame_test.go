package socket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrame(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    frameKind
		event   string
		payload string
		data    string
	}{
		{name: "open", raw: `0{"sid":"abc","pingInterval":25000,"pingTimeout":20000}`, kind: frameOpen, data: `{"sid":"abc","pingInterval":25000,"pingTimeout":20000}`},
		{name: "close", raw: "1", kind: frameClose},
		{name: "ping", raw: "2", kind: framePing},
		{name: "pong", raw: "3", kind: framePong},
		{name: "namespace connect", raw: `40{"sid":"xyz"}`, kind: frameConnect, data: `{"sid":"xyz"}`},
		{name: "namespace disconnect", raw: "41", kind: frameDisconnect},
		{name: "connect error", raw: `44{"message":"unauthorized"}`, kind: frameConnectError, data: `{"message":"unauthorized"}`},
		{name: "event", raw: `42["notification:new",{"id":"n1"}]`, kind: frameEvent, event: "notification:new", payload: `{"id":"n1"}`},
		{name: "event without payload", raw: `42["notificationCleared"]`, kind: frameEvent, event: "notificationCleared"},
		{name: "event with ack id", raw: `4217["notification:read",["n1"]]`, kind: frameEvent, event: "notification:read", payload: `["n1"]`},
		{name: "event on namespace", raw: `42/admin,["notification:new",{}]`, kind: frameEvent, event: "notification:new", payload: `{}`},
		{name: "upgrade is ignored", raw: "5", kind: frameIgnored},
		{name: "binary event is ignored", raw: `45-["x",{"_placeholder":true,"num":0}]`, kind: frameIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := parseFrame(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.kind, f.kind)
			assert.Equal(t, tt.event, f.event)
			assert.Equal(t, tt.payload, string(f.payload))
			assert.Equal(t, tt.data, string(f.data))
		})
	}
}

func TestParseFrame_Malformed(t *testing.T) {
	for _, raw := range []string{"", "4", `42not-json`, `42[]`, `42[17]`} {
		_, err := parseFrame(raw)
		assert.Error(t, err, raw)
	}
}

func TestConnectPacket(t *testing.T) {
	assert.Equal(t, "40", connectPacket(""))
	assert.Equal(t, `40{"token":"abc"}`, connectPacket("abc"))
}

func TestSocketURL(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{base: "http://localhost:5000", path: "/socket.io/", want: "ws://localhost:5000/socket.io/?EIO=4&transport=websocket"},
		{base: "https://api.example.com", path: "", want: "wss://api.example.com/socket.io/?EIO=4&transport=websocket"},
		{base: "wss://api.example.com", path: "realtime", want: "wss://api.example.com/realtime/?EIO=4&transport=websocket"},
	}

	for _, tt := range tests {
		got, err := socketURL(tt.base, tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := socketURL("ftp://example.com", "")
	assert.Error(t, err)
}
