// Package stream pushes render frames to browsers over websockets.
package stream

import (
	"encoding/json"
	"log"
	"net/http"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 64
)

// Envelope is the JSON message written to subscribers.
type Envelope struct {
	Topic string          `json:"topic"`
	Data  json.RawMessage `json:"data"`
}

type client struct {
	id    uuid.UUID
	topic string
	conn  *websocket.Conn
	send  chan []byte
}

// Hub fans frames out to websocket subscribers by topic. Publish never blocks:
// a subscriber whose buffer is full misses intermediate frames, and every new
// subscriber first receives the latest frame of its topic.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
	last    map[string][]byte
}

// NewHub creates a hub that accepts upgrades from the given origin patterns
// (path.Match syntax, "*" allows any origin).
func NewHub(allowedOrigins []string) *Hub {
	h := &Hub{
		clients: make(map[string]map[*client]struct{}),
		last:    make(map[string][]byte),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(allowedOrigins, r.Header.Get("Origin"))
		},
	}
	return h
}

func originAllowed(patterns []string, origin string) bool {
	if origin == "" {
		return true // Non-browser clients
	}
	for _, p := range patterns {
		if p == "*" || p == origin {
			return true
		}
		if ok, _ := path.Match(p, origin); ok {
			return true
		}
	}
	return false
}

// Publish encodes v and queues it for every subscriber of topic.
func (h *Hub) Publish(topic string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("ERROR [Hub] Failed to encode frame for topic %s: %v", topic, err)
		return
	}
	msg, err := json.Marshal(Envelope{Topic: topic, Data: data})
	if err != nil {
		log.Printf("ERROR [Hub] Failed to encode envelope for topic %s: %v", topic, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last[topic] = msg
	for c := range h.clients[topic] {
		select {
		case c.send <- msg:
		default:
			log.Printf("WARN [Hub] Client %s on %s is slow, dropping frame", c.id, topic)
		}
	}
}

// Forget drops the cached frame of a topic that no longer exists.
func (h *Hub) Forget(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.last, topic)
}

// Subscribers reports how many clients listen on topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}

// ServeWS upgrades the request and streams topic until the client goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, topic string) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		log.Printf("WARN [Hub] Websocket upgrade failed for %s: %v", topic, err)
		return
	}

	c := &client{
		id:    uuid.New(),
		topic: topic,
		conn:  conn,
		send:  make(chan []byte, sendBufferSize),
	}
	h.register(c)
	log.Printf("[Hub] Client %s subscribed to %s", c.id, topic)

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.topic] == nil {
		h.clients[c.topic] = make(map[*client]struct{})
	}
	h.clients[c.topic][c] = struct{}{}
	if msg, ok := h.last[c.topic]; ok {
		c.send <- msg
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.topic][c]; !ok {
		return
	}
	delete(h.clients[c.topic], c)
	if len(h.clients[c.topic]) == 0 {
		delete(h.clients, c.topic)
	}
	close(c.send)
	log.Printf("[Hub] Client %s left %s", c.id, c.topic)
}

// readPump discards inbound messages; it exists to notice closes and pongs.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WARN [Hub] Client %s read error: %v", c.id, err)
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
