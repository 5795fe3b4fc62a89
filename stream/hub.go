package stream

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gosight/sightmesh"
)

// pingInterval keeps idle connections alive through proxies.
const pingInterval = 30 * time.Second

// sendBuffer is the per-client outbound queue. A client that falls this far
// behind the frame rate is dropped rather than allowed to stall the hub.
const sendBuffer = 64

type message struct {
	kind int
	data []byte
}

type client struct {
	conn *websocket.Conn
	send chan message
	addr string
}

// Hub fans frames out to every connected websocket client.
//
// Hub methods are safe for concurrent use; the intended shape is one
// goroutine driving Broadcast (the frame loop, via Sink) while the HTTP
// server registers and removes clients.
type Hub struct {
	upgrader websocket.Upgrader
	log      *slog.Logger

	mu      sync.Mutex
	clients map[*client]bool
	closed  bool
}

// NewHub creates an empty hub. Clients join through ServeHTTP.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		log:     sightmesh.Logger(),
		clients: make(map[*client]bool),
	}
}

// ServeHTTP upgrades the request to a websocket connection and streams
// broadcast frames to it until the client disconnects or falls behind.
// Inbound messages are read and discarded; the protocol is one-way.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	c := &client{conn: conn, send: make(chan message, sendBuffer), addr: r.RemoteAddr}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = true
	h.mu.Unlock()
	h.log.Info("stream client connected", "remote", c.addr)

	go h.readLoop(c)
	go h.writeLoop(c)
}

// Broadcast queues a message for every connected client. Clients whose send
// buffer is full are disconnected.
func (h *Hub) Broadcast(kind int, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- message{kind: kind, data: data}:
		default:
			delete(h.clients, c)
			close(c.send)
			h.log.Warn("stream client dropped, send buffer full", "remote", c.addr)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects all clients and rejects future connections.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// remove unregisters a client if it is still registered, returning whether
// this call was the one that removed it. The send channel is closed exactly
// once, by whichever of remove and Broadcast gets there first.
func (h *Hub) remove(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.clients[c] {
		return false
	}
	delete(h.clients, c)
	close(c.send)
	return true
}

func (h *Hub) readLoop(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(msg.kind, msg.data); err != nil {
				h.remove(c)
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				h.remove(c)
				return
			}
		}
	}
}
