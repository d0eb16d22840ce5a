package kds

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/bill-printing-app/models"
	"github.com/yeremiapane/bill-printing-app/utils"
)

const (
	writeWait = 5 * time.Second
	// sendBuffer is how many messages may queue for one display before it is
	// treated as stalled and disconnected.
	sendBuffer = 16
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type client struct {
	conn *websocket.Conn
	role string
	send chan []byte
}

// Hub holds the connected kitchen display clients (chef, staff, admin) and
// pushes order events to all of them. Each client has its own writer
// goroutine, so a slow display never holds up the caller of Broadcast.
type Hub struct {
	clients map[*websocket.Conn]*client
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*client),
	}
}

func (h *Hub) RegisterClient(conn *websocket.Conn, role string) {
	c := &client{conn: conn, role: role, send: make(chan []byte, sendBuffer)}

	h.mutex.Lock()
	h.clients[conn] = c
	h.mutex.Unlock()

	go h.writePump(c)
}

func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.drop(conn)
}

// ClientCount reports how many displays are connected.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// PublishOrderEvent broadcasts the event under its own type name.
func (h *Hub) PublishOrderEvent(ctx context.Context, event models.OrderEvent) error {
	return h.Broadcast(Message{
		Event: event.Type,
		Data:  event,
	})
}

// Broadcast queues msg for every client without waiting on the network.
// A client whose queue is full is dropped.
func (h *Hub) Broadcast(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn, c := range h.clients {
		select {
		case c.send <- data:
		default:
			utils.ErrorLogger.Printf("Dropping stalled %s client, %s not delivered", c.role, msg.Event)
			h.drop(conn)
		}
	}
	return nil
}

// writePump delivers queued messages to one client until its queue is closed
// or a write fails.
func (h *Hub) writePump(c *client) {
	defer c.conn.Close()

	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending to %s client: %v", c.role, err)
			h.UnregisterClient(c.conn)
			return
		}
	}
}

// drop must be called with the mutex held.
func (h *Hub) drop(conn *websocket.Conn) {
	c, ok := h.clients[conn]
	if !ok {
		return
	}
	delete(h.clients, conn)
	close(c.send)
	conn.Close()
}

// CloseAll disconnects every display, used on shutdown.
func (h *Hub) CloseAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		h.drop(conn)
	}
}
