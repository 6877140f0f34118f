package app

import (
	"encoding/json"
	"net/http"
	"time"

	"chessbot/bots"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const wsIdlePingInterval = 30 * time.Second

type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Play upgrades to a websocket. Each "move_request" is answered with a
// "move" (or "error") message after the tier's thinking delay.
func (s *Server) Play(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Debug().Err(err).Msg("websocket upgrade failed")
		return
	}
	send := make(chan []byte, 16)
	done := make(chan struct{})
	// writerGone is closed once nothing drains send any more.
	writerGone := make(chan struct{})

	go func() {
		defer close(writerGone)
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, send, done); err != nil {
			log.Debug().Err(err).Msg("websocket write failed")
		}
	}()
	defer close(done)

	out := outbox{send: send, gone: writerGone}
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			out.enqueue("error", gin.H{"error": "malformed message"})
			continue
		}
		switch msg.Type {
		case "move_request":
			s.answerMove(c, msg.Payload, out)
		case "ping":
			out.enqueue("pong", nil)
		default:
			out.enqueue("error", gin.H{"error": "unknown message type " + msg.Type})
		}
	}
}

func (s *Server) answerMove(c *gin.Context, payload json.RawMessage, out outbox) {
	var req moveRequest
	if err := json.Unmarshal(payload, &req); err != nil || req.FEN == "" || req.Tier == "" {
		out.enqueue("error", gin.H{"error": "move_request needs fen and tier"})
		return
	}
	resp, _, err := s.selectMove(c, req)
	if err != nil {
		out.enqueue("error", gin.H{"error": err.Error()})
		return
	}
	if s.Delay != nil {
		tier, _ := bots.ParseTier(req.Tier)
		timer := time.NewTimer(s.Delay(tier))
		select {
		case <-timer.C:
		case <-out.gone:
			timer.Stop()
			return
		}
	}
	out.enqueue("move", resp)
}

// outbox queues messages for the connection's single writer.
type outbox struct {
	send chan<- []byte
	gone <-chan struct{}
}

// enqueue blocks until the writer takes the message or has stopped.
func (o outbox) enqueue(typ string, payload any) {
	msg := wsMessage{Type: typ}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			log.Error().Err(err).Str("type", typ).Msg("encode websocket payload")
			return
		}
		msg.Payload = data
	}
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Str("type", typ).Msg("encode websocket message")
		return
	}
	select {
	case o.send <- data:
	case <-o.gone:
		log.Debug().Str("type", typ).Msg("websocket closed, message dropped")
	}
}

func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte, done <-chan struct{}) error {
	ticker := time.NewTicker(wsIdlePingInterval)
	defer ticker.Stop()
	lastWrite := time.Now()

	for {
		select {
		case <-done:
			return nil
		case msg := <-send:
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < wsIdlePingInterval {
				continue
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
