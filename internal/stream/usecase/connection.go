package usecase

import (
	"context"
	"slices"
	"sync"
	"time"

	"cryptobuzz-srv/internal/stream"
	"cryptobuzz-srv/pkg/log"

	"github.com/gorilla/websocket"
)

const sendBufferSize = 256

type connConfig struct {
	pongWait       time.Duration
	pingPeriod     time.Duration
	writeWait      time.Duration
	maxMessageSize int64
}

// Connection is one websocket client. The hub owns its send channel; only the hub closes it.
type Connection struct {
	id     string
	userID string

	hub  *Hub
	conn stream.Socket
	cfg  connConfig

	send chan []byte
	done chan struct{}
	once sync.Once

	// onMessage handles one inbound client frame.
	onMessage func(c *Connection, raw []byte)

	mu       sync.RWMutex
	interest map[string]struct{}

	logger log.Logger
}

func newConnection(id, userID string, hub *Hub, conn stream.Socket, cfg connConfig, logger log.Logger) *Connection {
	return &Connection{
		id:       id,
		userID:   userID,
		hub:      hub,
		conn:     conn,
		cfg:      cfg,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
		interest: make(map[string]struct{}),
		logger:   logger,
	}
}

func (c *Connection) ID() string { return c.id }

// isClosed reports whether Close was called. Closed connections are skipped by fan-out.
func (c *Connection) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *Connection) addInterest(symbols []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range symbols {
		c.interest[s] = struct{}{}
	}
}

func (c *Connection) removeInterest(symbols []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range symbols {
		delete(c.interest, s)
	}
}

// Interest returns the symbols the client asked for, sorted.
func (c *Connection) Interest() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.interest))
	for s := range c.interest {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// readPump handles client frames until the socket fails, then unregisters the connection.
func (c *Connection) readPump() {
	defer func() {
		c.hub.unregisterConn(c)
		c.Close()
	}()

	c.conn.SetReadLimit(c.cfg.maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warnf(context.Background(), "internal.stream.usecase.readPump: connection %s: %v", c.id, err)
			}
			return
		}
		if c.onMessage != nil {
			c.onMessage(c, message)
		}
	}
}

// writePump is the only writer of the socket.
func (c *Connection) writePump() {
	ticker := time.NewTicker(c.cfg.pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// One frame per event: clients parse each frame as a single JSON object.
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			if _, err := w.Write(message); err != nil {
				_ = w.Close()
				return
			}
			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			return
		}
	}
}

// Start runs the read and write pumps.
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close marks the connection closed and closes the socket. Safe to call more than once.
func (c *Connection) Close() {
	c.once.Do(func() {
		close(c.done)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}
