package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"cryptobuzz-srv/internal/metrics"
	"cryptobuzz-srv/pkg/log"
)

// Hub maintains the set of active connections and fans events out to them.
type Hub struct {
	// connection id -> connection
	connections map[string]*Connection
	// user id -> number of open connections
	users map[string]int
	mu    sync.RWMutex

	register   chan *Connection
	unregister chan *Connection

	// onRegister runs in the hub goroutine after a connection joins.
	onRegister func(c *Connection)

	messagesSent    atomic.Int64
	messagesDropped atomic.Int64

	maxConnections int
	logger         log.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func newHub(logger log.Logger, maxConnections int) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		connections:    make(map[string]*Connection),
		users:          make(map[string]int),
		register:       make(chan *Connection),
		unregister:     make(chan *Connection),
		maxConnections: maxConnections,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
		done:           make(chan struct{}),
	}
}

func (h *Hub) run() {
	defer close(h.done)

	for {
		select {
		case <-h.ctx.Done():
			h.logger.Info(context.Background(), "internal.stream.usecase.hub: shutting down")
			h.closeAllConnections()
			return

		case c := <-h.register:
			if h.registerConnection(c) && h.onRegister != nil {
				h.onRegister(c)
			}

		case c := <-h.unregister:
			h.unregisterConnection(c)
		}
	}
}

// registerConnection refuses a connection that closed before the hub saw it,
// since its unregister may already have been processed.
func (h *Hub) registerConnection(c *Connection) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c.isClosed() {
		h.logger.Debugf(context.Background(), "internal.stream.usecase.hub: connection %s closed before registration", c.id)
		return false
	}

	if h.maxConnections > 0 && len(h.connections) >= h.maxConnections {
		h.logger.Warnf(context.Background(), "internal.stream.usecase.hub: max connections reached, rejecting %s", c.id)
		go c.Close()
		return false
	}

	h.connections[c.id] = c
	h.users[c.userID]++
	metrics.StreamConnections.Set(float64(len(h.connections)))
	h.logger.Infof(context.Background(), "internal.stream.usecase.hub: connection %s opened (user %s, total %d)", c.id, c.userID, len(h.connections))
	return true
}

func (h *Hub) unregisterConnection(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.connections[c.id]; !ok {
		return
	}
	delete(h.connections, c.id)
	close(c.send)

	h.users[c.userID]--
	if h.users[c.userID] <= 0 {
		delete(h.users, c.userID)
	}
	metrics.StreamConnections.Set(float64(len(h.connections)))
	h.logger.Infof(context.Background(), "internal.stream.usecase.hub: connection %s closed (total %d)", c.id, len(h.connections))
}

// unregisterConn queues c for removal unless the hub is already gone.
func (h *Hub) unregisterConn(c *Connection) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// broadcast enqueues data on every open connection without blocking.
// A full buffer drops the message for that connection only. It returns the number of deliveries.
func (h *Hub) broadcast(data []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sent := 0
	for _, c := range h.connections {
		if c.isClosed() {
			continue
		}
		select {
		case c.send <- data:
			sent++
		default:
			h.messagesDropped.Add(1)
			metrics.StreamDrops.Inc()
			h.logger.Warnf(context.Background(), "internal.stream.usecase.hub: send buffer full, dropping message for %s", c.id)
		}
	}
	h.messagesSent.Add(int64(sent))
	return sent
}

func (h *Hub) get(id string) (*Connection, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.connections[id]
	return c, ok
}

func (h *Hub) closeAllConnections() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, c := range h.connections {
		c.Close()
		delete(h.connections, id)
	}
	h.users = make(map[string]int)
	metrics.StreamConnections.Set(0)
}

func (h *Hub) stats() (active, users int, sent, dropped int64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections), len(h.users), h.messagesSent.Load(), h.messagesDropped.Load()
}

// shutdown stops the hub loop and closes every connection, bounded by ctx.
func (h *Hub) shutdown(ctx context.Context) error {
	h.cancel()

	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
