package socket

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Engine.IO packet types.
const (
	engineOpen    = '0'
	engineClose   = '1'
	enginePing    = '2'
	enginePong    = '3'
	engineMessage = '4'
)

// Socket.IO packet types carried inside an Engine.IO message.
const (
	packetConnect      = '0'
	packetDisconnect   = '1'
	packetEvent        = '2'
	packetConnectError = '4'
)

type frameKind int

const (
	frameOpen frameKind = iota + 1
	frameClose
	framePing
	framePong
	frameConnect
	frameDisconnect
	frameEvent
	frameConnectError
	frameIgnored
)

// frame is one decoded websocket text message.
type frame struct {
	kind    frameKind
	event   string
	payload json.RawMessage
	data    json.RawMessage
}

// handshake is the body of the Engine.IO open packet.
type handshake struct {
	SID          string `json:"sid"`
	PingInterval int    `json:"pingInterval"`
	PingTimeout  int    `json:"pingTimeout"`
}

var errEmptyFrame = errors.New("empty frame")

// parseFrame decodes an Engine.IO v4 frame and, for messages, the Socket.IO packet inside it.
func parseFrame(raw string) (frame, error) {
	if raw == "" {
		return frame{}, errEmptyFrame
	}

	switch raw[0] {
	case engineOpen:
		return frame{kind: frameOpen, data: json.RawMessage(raw[1:])}, nil
	case engineClose:
		return frame{kind: frameClose}, nil
	case enginePing:
		return frame{kind: framePing}, nil
	case enginePong:
		return frame{kind: framePong}, nil
	case engineMessage:
		return parsePacket(raw[1:])
	default:
		return frame{kind: frameIgnored}, nil
	}
}

func parsePacket(raw string) (frame, error) {
	if raw == "" {
		return frame{}, errEmptyFrame
	}

	kind := raw[0]
	body := skipNamespace(raw[1:])

	switch kind {
	case packetConnect:
		return frame{kind: frameConnect, data: json.RawMessage(body)}, nil
	case packetDisconnect:
		return frame{kind: frameDisconnect}, nil
	case packetConnectError:
		return frame{kind: frameConnectError, data: json.RawMessage(body)}, nil
	case packetEvent:
		body = strings.TrimLeft(body, "0123456789") // ack id

		var args []json.RawMessage
		if err := json.Unmarshal([]byte(body), &args); err != nil {
			return frame{}, errors.Wrap(err, "decode event packet")
		}
		if len(args) == 0 {
			return frame{}, errors.New("event packet without name")
		}

		var name string
		if err := json.Unmarshal(args[0], &name); err != nil {
			return frame{}, errors.Wrap(err, "decode event name")
		}

		f := frame{kind: frameEvent, event: name}
		if len(args) > 1 {
			f.payload = args[1]
		}

		return f, nil
	default:
		return frame{kind: frameIgnored}, nil
	}
}

// skipNamespace drops a leading "/nsp," prefix.
func skipNamespace(body string) string {
	if !strings.HasPrefix(body, "/") {
		return body
	}
	if i := strings.IndexByte(body, ','); i >= 0 {
		return body[i+1:]
	}

	return ""
}

// connectPacket is the namespace connect request, with the bearer token as auth when present.
func connectPacket(token string) string {
	if token == "" {
		return string([]byte{engineMessage, packetConnect})
	}

	auth, _ := json.Marshal(map[string]string{"token": token})

	return string([]byte{engineMessage, packetConnect}) + string(auth)
}
