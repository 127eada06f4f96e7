package streaming

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Inbound client messages. Type selects the operation; the remaining fields
// are read per type.
const (
	messageSessionStart = "session:start"
	messageAudioChunk   = "audio:chunk"
	messageSessionEnd   = "session:end"
)

type clientMessage struct {
	Type       string `json:"type"`
	AudioURL   string `json:"audioUrl,omitempty"`
	ChunkIndex int    `json:"chunkIndex,omitempty"`
	Chunk      string `json:"chunk,omitempty"`
}

// WSHandler upgrades websocket connections and routes inbound messages into
// the streaming controller.
type WSHandler struct {
	controller *Controller
	logger     *slog.Logger
}

func NewWSHandler(controller *Controller, logger *slog.Logger) *WSHandler {
	return &WSHandler{
		controller: controller,
		logger:     logger.With("component", "ws_handler"),
	}
}

func (h *WSHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/stream", h.handleStream)
}

// handleStream serves one streaming session over a websocket connection.
//
//	@Summary		Open a streaming transcription session
//	@Description	WebSocket endpoint; the server emits session:created and the client drives the session with session:start, audio:chunk and session:end messages.
//	@Tags			streaming
//	@Router			/stream [get]
func (h *WSHandler) handleStream(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return err
	}

	conn := newWSClientConn(ws, h.logger)
	stream := h.controller.Accept(conn.emit)

	go conn.writePump()
	conn.readPump(c.Request().Context(), stream)

	stream.Disconnect()
	conn.Close()
	return nil
}

type wsClientConn struct {
	ws     *websocket.Conn
	logger *slog.Logger
	send   chan Event
	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

func newWSClientConn(ws *websocket.Conn, logger *slog.Logger) *wsClientConn {
	return &wsClientConn{
		ws:     ws,
		logger: logger,
		send:   make(chan Event, 128),
		done:   make(chan struct{}),
	}
}

// emit queues an outbound event. It blocks rather than drops so the event
// order the controller produced is the order the client observes.
func (c *wsClientConn) emit(ev Event) {
	select {
	case c.send <- ev:
	case <-c.done:
	}
}

func (c *wsClientConn) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.done)
	c.mu.Unlock()

	return c.ws.Close()
}

func (c *wsClientConn) readPump(ctx context.Context, stream *Stream) {
	defer c.Close()

	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Error("websocket read error", "error", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.logger.Error("failed to unmarshal client message", "error", err)
			continue
		}

		switch msg.Type {
		case messageSessionStart:
			stream.Start(ctx, msg.AudioURL)
		case messageAudioChunk:
			stream.Chunk(ctx, msg.ChunkIndex, []byte(msg.Chunk))
		case messageSessionEnd:
			stream.End(ctx)
		default:
			c.logger.Warn("unknown message type", "type", msg.Type)
		}
	}
}

func (c *wsClientConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case ev := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))

			data, err := json.Marshal(ev)
			if err != nil {
				c.logger.Error("failed to marshal event", "error", err)
				continue
			}

			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				c.logger.Error("websocket write error", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
