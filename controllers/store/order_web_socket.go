package storeControllers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/junaidrashid-git/orbit-aether/models"
	"go.uber.org/zap"
)

const (
	// Time allowed to write one message to a listener.
	writeWait = 10 * time.Second

	// Updates queued per listener before it is dropped as too slow.
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// listener is one websocket connection with its outgoing queue. Only the
// listener's writer goroutine writes to conn.
type listener struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans order updates out to every connected websocket listener.
type Hub struct {
	mu      sync.Mutex
	clients map[*listener]bool
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		clients: make(map[*listener]bool),
		log:     log,
	}
}

// ServeWS upgrades the request and keeps the listener registered until it
// disconnects. Incoming messages are ignored.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	l := &listener{conn: conn, send: make(chan []byte, sendBuffer)}
	h.mu.Lock()
	h.clients[l] = true
	h.mu.Unlock()

	go h.writePump(l)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(l)
}

// writePump delivers queued updates to one listener until it is dropped or a
// write fails.
func (h *Hub) writePump(l *listener) {
	defer l.conn.Close()
	for data := range l.send {
		_ = l.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := l.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Debug("websocket write failed", zap.Error(err))
			h.remove(l)
			return
		}
	}
}

// remove unregisters l, closes its queue and its connection. Safe to call
// more than once.
func (h *Hub) remove(l *listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(l)
}

// drop needs h.mu held. Closing the connection also aborts a write in flight.
func (h *Hub) drop(l *listener) {
	if _, ok := h.clients[l]; ok {
		delete(h.clients, l)
		close(l.send)
		l.conn.Close()
	}
}

// Count returns the number of connected listeners.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues order for every listener without blocking. Listeners whose
// queue is full are dropped.
func (h *Hub) Broadcast(order models.StoreOrder) {
	data, err := json.Marshal(order)
	if err != nil {
		h.log.Error("failed to encode order for broadcast", zap.Uint("order_id", order.ID), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for l := range h.clients {
		select {
		case l.send <- data:
		default:
			h.log.Warn("dropping slow websocket listener", zap.Uint("order_id", order.ID))
			h.drop(l)
		}
	}
}
