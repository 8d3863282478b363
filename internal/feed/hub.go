package feed

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// Watch clients never send application data.
	maxMessageSize = 512

	sendQueueSize = 8
)

// client is one open watch connection. All frames go through send and
// are written by a single writePump goroutine; gorilla/websocket
// supports at most one concurrent writer per connection.
type client struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub tracks the open watch connections per user. A user may hold more
// than one (phone plus tablet), so connections are a set.
type Hub struct {
	mutex       sync.RWMutex
	connections map[string]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]map[*client]struct{}),
	}
}

// Serve owns the connection from registration to teardown: it starts
// the write pump, invokes onReady once snapshots can be queued, and
// blocks reading control frames until the client goes away.
func (h *Hub) Serve(userID string, conn *websocket.Conn, onReady func()) {
	c := &client{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, sendQueueSize),
	}

	h.register(c)

	go h.writePump(c)
	if onReady != nil {
		onReady()
	}
	h.readPump(c)
}

func (h *Hub) register(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	set, ok := h.connections[c.userID]
	if !ok {
		set = make(map[*client]struct{})
		h.connections[c.userID] = set
	}
	set[c] = struct{}{}
}

// unregister is idempotent; both pumps call it on their way out.
func (h *Hub) unregister(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	set, ok := h.connections[c.userID]
	if !ok {
		return
	}
	if _, exists := set[c]; !exists {
		return
	}

	delete(set, c)
	if len(set) == 0 {
		delete(h.connections, c.userID)
	}

	close(c.send)
	_ = c.conn.Close()
}

// SendToUser queues a JSON message for every connection the user
// holds. Clients too slow to drain their queue miss this snapshot and
// catch up on the next one. Returns true when at least one connection
// accepted the message.
func (h *Hub) SendToUser(userID string, message any) bool {
	data, err := json.Marshal(message)
	if err != nil {
		log.Println("feed: marshal failed:", err)
		return false
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	delivered := false
	for c := range h.connections[userID] {
		select {
		case c.send <- data:
			delivered = true
		default:
		}
	}
	return delivered
}

func (h *Hub) IsOnline(userID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections[userID]) > 0
}

func (h *Hub) Close() {
	h.mutex.Lock()
	clients := make([]*client, 0)
	for _, set := range h.connections {
		for c := range set {
			clients = append(clients, c)
		}
	}
	h.mutex.Unlock()

	for _, c := range clients {
		h.unregister(c)
	}
}

// writePump is the connection's only writer: it drains the send queue
// and keeps the client alive with periodic pings.
func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.unregister(c)
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump consumes control frames so pongs are processed, and drops
// half-open clients once the pong deadline lapses.
func (h *Hub) readPump(c *client) {
	defer h.unregister(c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
